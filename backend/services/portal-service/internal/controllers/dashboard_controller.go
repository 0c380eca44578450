package controllers

import (
	"net/http"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(s *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: s}
}

// GET /api/dashboard/stats
func (c *DashboardController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := c.dashboardService.Stats(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// GET /api/dashboard/activity
func (c *DashboardController) RecentActivityHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.dashboardService.RecentActivity())
}

// GET /api/dashboard/upcoming-inspections
func (c *DashboardController) UpcomingInspectionsHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.dashboardService.UpcomingInspections())
}
