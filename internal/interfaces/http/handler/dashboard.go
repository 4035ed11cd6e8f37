package handler

import (
	"github.com/gin-gonic/gin"

	dashboardapp "github.com/agency/backend/internal/application/dashboard"
)

// DashboardHandler handles back-office dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	statsService *dashboardapp.StatsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(statsService *dashboardapp.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Stats returns an eventually-consistent snapshot of lead and content counts
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Collect(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}
