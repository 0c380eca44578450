package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
)

type UnitController struct {
	propertyService *services.PropertyService
}

func NewUnitController(s *services.PropertyService) *UnitController {
	return &UnitController{propertyService: s}
}

// GET /api/units
func (c *UnitController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListUnits(r.Context())
	respondList(w, list, err)
}

// GET /api/units/{id}
func (c *UnitController) GetUnitHandler(w http.ResponseWriter, r *http.Request) {
	u, err := c.propertyService.GetUnit(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, u, err, "Unit not found")
}

// POST /api/units
func (c *UnitController) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUnitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	u, err := c.propertyService.CreateUnit(r.Context(), req)
	respondCreated(w, u, err)
}
