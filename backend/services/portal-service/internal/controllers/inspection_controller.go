package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
)

type InspectionController struct {
	inspectionService *services.InspectionService
}

func NewInspectionController(s *services.InspectionService) *InspectionController {
	return &InspectionController{inspectionService: s}
}

// GET /api/inspections
func (c *InspectionController) ListInspectionsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.inspectionService.ListInspections(r.Context())
	respondList(w, list, err)
}

// GET /api/inspections/{id}
func (c *InspectionController) GetInspectionHandler(w http.ResponseWriter, r *http.Request) {
	i, err := c.inspectionService.GetInspection(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, i, err, "Inspection not found")
}

// POST /api/inspections
func (c *InspectionController) CreateInspectionHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateInspectionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	i, err := c.inspectionService.CreateInspection(r.Context(), req)
	respondCreated(w, i, err)
}
