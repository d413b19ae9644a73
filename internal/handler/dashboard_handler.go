package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chajse/EduSumm/internal/dto"
	"github.com/Chajse/EduSumm/internal/middleware"
)

type dashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, bool)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary godoc
// @Summary Dashboard overview
// @Description Totals, average grade, grade distribution and recent activity. Always 200.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, cacheHit := h.service.Summary(c.Request.Context())
	if summary == nil {
		summary = dto.DefaultDashboard()
	}
	middleware.SetCacheHit(c, cacheHit)
	c.JSON(http.StatusOK, summary)
}
