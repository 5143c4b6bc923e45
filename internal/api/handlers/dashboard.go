package handlers

import (
	"strconv"

	"leadportaal/internal/api/dto/v1/dashboard"
	"leadportaal/internal/api/mapper"
	"leadportaal/internal/service"
	"leadportaal/internal/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	activityService  *service.ActivityService
}

func NewDashboardHandler(dashboardService *service.DashboardService, activityService *service.ActivityService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		activityService:  activityService,
	}
}

// Stats returns the dashboard overview counters
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, dashboard.StatsResponse{
		TotalQuotes:      int64(stats.TotalQuotes),
		NewQuotes:        int64(stats.NewQuotes),
		TotalFreelancers: int64(stats.TotalFreelancers),
	})
}

// Activities returns the recent activity feed
func (h *DashboardHandler) Activities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	activities, err := h.activityService.Recent(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.ActivitiesToActivityResponses(activities))
}
