package controllers

import (
	"net/http"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type DemoRequestController struct {
	svc services.DemoRequestService
}

func NewDemoRequestController(s services.DemoRequestService) *DemoRequestController {
	return &DemoRequestController{svc: s}
}

// POST /api/demo-request
func (c *DemoRequestController) SubmitDemoRequestHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.DemoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.svc.SubmitDemoRequest(r.Context(), req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to submit demo request", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DemoRequestResponse{Message: "Demo request submitted successfully"})
}
