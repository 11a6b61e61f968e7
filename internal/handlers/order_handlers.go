package handlers

import (
	"errors"
	"net/http"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/services"
	"gasgestor_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// CreateOrder places a new cylinder order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateOrder: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	order, err := h.orderService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.LogError(err, "CreateOrder: Error from orderService.Create")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders returns orders, optionally filtered by status and a client
// name/address search term.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filters := models.OrderFilters{
		Status: utils.NewNullString(c.Query("status")),
		Search: utils.NewNullString(c.Query("search")),
	}

	orders, err := h.orderService.List(filters)
	if err != nil {
		utils.LogError(err, "ListOrders: Error from orderService.List")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to list orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID returns a single order.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	order, err := h.orderService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else {
			utils.LogError(err, "GetOrderByID: Error from orderService.GetByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order to a new status.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateOrderStatus: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrderStatus) {
			utils.RespondValidationFailed(c, err.Error())
		} else if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else {
			utils.LogError(err, "UpdateOrderStatus: Error from orderService.UpdateStatus")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update order status.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetDeliveryMetrics returns the delivery screen counters.
func (h *OrderHandler) GetDeliveryMetrics(c *gin.Context) {
	metrics, err := h.orderService.GetDeliveryMetrics()
	if err != nil {
		utils.LogError(err, "GetDeliveryMetrics: Error from orderService.GetDeliveryMetrics")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load delivery metrics.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, metrics)
}
