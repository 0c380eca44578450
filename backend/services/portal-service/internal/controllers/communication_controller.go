package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
)

type CommunicationController struct {
	communicationService *services.CommunicationService
}

func NewCommunicationController(s *services.CommunicationService) *CommunicationController {
	return &CommunicationController{communicationService: s}
}

// GET /api/communications[?userId=]
func (c *CommunicationController) ListCommunicationsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.communicationService.ListCommunications(r.Context(), r.URL.Query().Get("userId"))
	respondList(w, list, err)
}

// GET /api/communications/{id}
func (c *CommunicationController) GetCommunicationHandler(w http.ResponseWriter, r *http.Request) {
	comm, err := c.communicationService.GetCommunication(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, comm, err, "Communication not found")
}

// POST /api/communications
func (c *CommunicationController) CreateCommunicationHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateCommunicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	comm, err := c.communicationService.CreateCommunication(r.Context(), req)
	respondCreated(w, comm, err)
}
