package handlers

import (
	"errors"
	"net/http"

	"gasgestor_backend/internal/services"
	"gasgestor_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// ListItems returns all inventory items with their alert tiers.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.inventoryService.List()
	if err != nil {
		utils.LogError(err, "ListItems: Error from inventoryService.List")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to list inventory.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMetrics returns the aggregated stock counters.
func (h *InventoryHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.inventoryService.GetMetrics()
	if err != nil {
		utils.LogError(err, "GetMetrics: Error from inventoryService.GetMetrics")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load inventory metrics.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// CreateItem registers a new product line.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req services.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateItem: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.inventoryService.CreateItem(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.LogError(err, "CreateItem: Error from inventoryService.CreateItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create inventory item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// AdjustStock moves full units in or out of an item's stock.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	itemID := c.Param("id")

	var req services.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AdjustStock: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.inventoryService.Adjust(itemID, req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
		} else {
			utils.LogError(err, "AdjustStock: Error from inventoryService.Adjust")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to adjust stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}
