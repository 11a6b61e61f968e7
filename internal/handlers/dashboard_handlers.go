package handlers

import (
	"net/http"

	"gasgestor_backend/internal/services"
	"gasgestor_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetMetrics returns the dashboard headline numbers.
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetMetrics()
	if err != nil {
		utils.LogError(err, "GetMetrics: Error from dashboardService.GetMetrics")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load dashboard metrics.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetOrdersPerDay returns the orders-per-day chart for the last week.
func (h *DashboardHandler) GetOrdersPerDay(c *gin.Context) {
	points, err := h.dashboardService.GetOrdersPerDay()
	if err != nil {
		utils.LogError(err, "GetOrdersPerDay: Error from dashboardService.GetOrdersPerDay")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load orders chart.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetRevenuePerDay returns the revenue-per-day chart for the last week.
func (h *DashboardHandler) GetRevenuePerDay(c *gin.Context) {
	points, err := h.dashboardService.GetRevenuePerDay()
	if err != nil {
		utils.LogError(err, "GetRevenuePerDay: Error from dashboardService.GetRevenuePerDay")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load revenue chart.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, points)
}
