package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
)

type ComplianceController struct {
	complianceService *services.ComplianceService
}

func NewComplianceController(s *services.ComplianceService) *ComplianceController {
	return &ComplianceController{complianceService: s}
}

// GET /api/compliance-items
func (c *ComplianceController) ListItemsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.complianceService.ListItems(r.Context())
	respondList(w, list, err)
}

// GET /api/compliance-items/{id}
func (c *ComplianceController) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	item, err := c.complianceService.GetItem(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, item, err, "Compliance item not found")
}

// POST /api/compliance-items
func (c *ComplianceController) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateComplianceItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.complianceService.CreateItem(r.Context(), req)
	respondCreated(w, item, err)
}
