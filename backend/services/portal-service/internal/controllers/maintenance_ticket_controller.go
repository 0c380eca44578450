package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type MaintenanceTicketController struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceTicketController(s *services.MaintenanceService) *MaintenanceTicketController {
	return &MaintenanceTicketController{maintenanceService: s}
}

// GET /api/maintenance-tickets
func (c *MaintenanceTicketController) ListTicketsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.maintenanceService.ListTickets(r.Context())
	respondList(w, list, err)
}

// GET /api/maintenance-tickets/{id}
func (c *MaintenanceTicketController) GetTicketHandler(w http.ResponseWriter, r *http.Request) {
	t, err := c.maintenanceService.GetTicket(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, t, err, "Maintenance ticket not found")
}

// POST /api/maintenance-tickets
func (c *MaintenanceTicketController) CreateTicketHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateMaintenanceTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.maintenanceService.CreateTicket(r.Context(), req)
	respondCreated(w, t, err)
}

// PATCH /api/maintenance-tickets/{id}
func (c *MaintenanceTicketController) UpdateTicketHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateMaintenanceTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.maintenanceService.UpdateTicket(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, t)
}
