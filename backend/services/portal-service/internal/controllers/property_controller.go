package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
)

type PropertyController struct {
	propertyService *services.PropertyService
}

func NewPropertyController(s *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: s}
}

// GET /api/properties
func (c *PropertyController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListProperties(r.Context())
	respondList(w, list, err)
}

// GET /api/properties/{id}
func (c *PropertyController) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	p, err := c.propertyService.GetProperty(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, p, err, "Property not found")
}

// POST /api/properties
func (c *PropertyController) CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.propertyService.CreateProperty(r.Context(), req)
	respondCreated(w, p, err)
}

// GET /api/properties/{id}/units
func (c *PropertyController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListPropertyUnits(r.Context(), mux.Vars(r)["id"])
	respondList(w, list, err)
}

// GET /api/properties/{id}/maintenance-tickets
func (c *PropertyController) ListMaintenanceTicketsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListPropertyTickets(r.Context(), mux.Vars(r)["id"])
	respondList(w, list, err)
}

// GET /api/properties/{id}/inspections
func (c *PropertyController) ListInspectionsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListPropertyInspections(r.Context(), mux.Vars(r)["id"])
	respondList(w, list, err)
}

// GET /api/properties/{id}/transactions
func (c *PropertyController) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListPropertyTransactions(r.Context(), mux.Vars(r)["id"])
	respondList(w, list, err)
}

// GET /api/properties/{id}/compliance-items
func (c *PropertyController) ListComplianceItemsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.propertyService.ListPropertyComplianceItems(r.Context(), mux.Vars(r)["id"])
	respondList(w, list, err)
}
