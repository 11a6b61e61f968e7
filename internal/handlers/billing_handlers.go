package handlers

import (
	"errors"
	"net/http"

	"gasgestor_backend/internal/services"
	"gasgestor_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BillingHandler holds the billing service.
type BillingHandler struct {
	billingService services.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: bs}
}

// GetSummary returns the billing headline figures.
func (h *BillingHandler) GetSummary(c *gin.Context) {
	summary, err := h.billingService.GetSummary()
	if err != nil {
		utils.LogError(err, "GetSummary: Error from billingService.GetSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load billing summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWeeklyBreakdown returns revenue and expenses per weekday.
func (h *BillingHandler) GetWeeklyBreakdown(c *gin.Context) {
	days, err := h.billingService.GetWeeklyBreakdown()
	if err != nil {
		utils.LogError(err, "GetWeeklyBreakdown: Error from billingService.GetWeeklyBreakdown")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load weekly breakdown.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, days)
}

// GetSalesByProduct returns the weekly product sales ranking.
func (h *BillingHandler) GetSalesByProduct(c *gin.Context) {
	sales, err := h.billingService.GetSalesByProduct()
	if err != nil {
		utils.LogError(err, "GetSalesByProduct: Error from billingService.GetSalesByProduct")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load sales by product.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, sales)
}

// GetRecentActivity returns the merged transaction/order activity feed.
func (h *BillingHandler) GetRecentActivity(c *gin.Context) {
	activity, err := h.billingService.GetRecentActivity()
	if err != nil {
		utils.LogError(err, "GetRecentActivity: Error from billingService.GetRecentActivity")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load recent activity.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, activity)
}

// CreateTransaction registers a manual financial entry.
func (h *BillingHandler) CreateTransaction(c *gin.Context) {
	var req services.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTransaction: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	transaction, err := h.billingService.CreateTransaction(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.LogError(err, "CreateTransaction: Error from billingService.CreateTransaction")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create transaction.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, transaction)
}
