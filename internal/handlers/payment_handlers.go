package handlers

import (
	"errors"
	"net/http"

	"gasgestor_backend/internal/services"
	"gasgestor_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler holds the supplier payment service.
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

// ListPayments returns supplier payments, optionally filtered by status.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.List(utils.NewNullString(c.Query("status")))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.LogError(err, "ListPayments: Error from paymentService.List")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to list payments.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetSummary returns totals per payment status.
func (h *PaymentHandler) GetSummary(c *gin.Context) {
	summary, err := h.paymentService.GetSummary()
	if err != nil {
		utils.LogError(err, "GetSummary: Error from paymentService.GetSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load payments summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreatePayment registers a new supplier obligation.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePayment: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	payment, err := h.paymentService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.LogError(err, "CreatePayment: Error from paymentService.Create")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create payment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// SettlePayment marks a payment as paid and records its expense entry.
func (h *PaymentHandler) SettlePayment(c *gin.Context) {
	payment, err := h.paymentService.Settle(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found.", err.Error()))
		} else if errors.Is(err, services.ErrPaymentAlreadySettled) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Payment is already settled.", err.Error()))
		} else {
			utils.LogError(err, "SettlePayment: Error from paymentService.Settle")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to settle payment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, payment)
}
