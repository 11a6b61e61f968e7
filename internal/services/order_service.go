package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/repositories"
	"gasgestor_backend/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// DeliveryProductPlaceholder replaces the product name when the referenced
// inventory row no longer exists. One missing reference must not abort a
// whole listing.
const DeliveryProductPlaceholder = "Produto não encontrado"

// --- DTOs ---

// CreateOrderRequest is used for placing a new cylinder order. Any status on
// input is ignored; new orders always start pending.
type CreateOrderRequest struct {
	ClientName    string     `json:"client_name" binding:"required"`
	ClientAddress string     `json:"client_address"`
	ProductID     string     `json:"product_id"`
	Quantity      int        `json:"quantity" binding:"required"`
	TotalValue    float64    `json:"total_value"`
	ScheduledTime *time.Time `json:"scheduled_time"`
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- OrderService Interface ---
type OrderService interface {
	Create(req CreateOrderRequest) (*models.Order, error)
	List(filters models.OrderFilters) ([]models.Order, error)
	GetByID(orderID string) (*models.Order, error)
	UpdateStatus(orderID string, req UpdateOrderStatusRequest) (*models.Order, error)
	GetDeliveryMetrics() (*models.DeliveryMetrics, error)
}

type orderService struct {
	orderRepo     repositories.OrderRepository
	inventoryRepo repositories.InventoryRepository
	db            *sql.DB
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(or repositories.OrderRepository, ir repositories.InventoryRepository, db *sql.DB) OrderService {
	return &orderService{orderRepo: or, inventoryRepo: ir, db: db}
}

func (s *orderService) Create(req CreateOrderRequest) (*models.Order, error) {
	if utils.IsEmpty(req.ClientName) {
		return nil, fmt.Errorf("%w: client name cannot be empty", ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	order := models.Order{
		ClientName:    req.ClientName,
		ClientAddress: req.ClientAddress,
		Status:        models.OrderStatusPending, // forced regardless of input
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		TotalValue:    req.TotalValue,
		ScheduledTime: req.ScheduledTime,
		CreatedAt:     time.Now(),
	}

	if _, err := s.orderRepo.Create(s.db, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.ProductName = s.resolveProductName(order.ProductID)
	return &order, nil
}

func (s *orderService) List(filters models.OrderFilters) ([]models.Order, error) {
	orders, err := s.orderRepo.List(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	for i := range orders {
		orders[i].ProductName = s.resolveProductName(orders[i].ProductID)
	}
	return orders, nil
}

func (s *orderService) GetByID(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}
	order.ProductName = s.resolveProductName(order.ProductID)
	return order, nil
}

// UpdateStatus writes the new status directly. Any known status is accepted;
// there is no central legal-transition check. Marking an order delivered also
// stamps the delivery time.
func (s *orderService) UpdateStatus(orderID string, req UpdateOrderStatusRequest) (*models.Order, error) {
	if !isValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, req.Status)
	}

	var deliveredAt *time.Time
	if req.Status == models.OrderStatusDelivered {
		now := time.Now()
		deliveredAt = &now
	}

	if err := s.orderRepo.UpdateStatus(s.db, orderID, req.Status, deliveredAt); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return s.GetByID(orderID)
}

func (s *orderService) GetDeliveryMetrics() (*models.DeliveryMetrics, error) {
	counts, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	metrics := &models.DeliveryMetrics{
		Pending:   counts[models.OrderStatusPending],
		EnRoute:   counts[models.OrderStatusEnRoute],
		Delivered: counts[models.OrderStatusDelivered],
	}
	for _, count := range counts {
		metrics.Total += count
	}
	return metrics, nil
}

// resolveProductName looks up the referenced product, falling back to the
// placeholder when the reference is empty or the lookup fails.
func (s *orderService) resolveProductName(productID string) string {
	if productID == "" {
		return DeliveryProductPlaceholder
	}
	name, err := s.inventoryRepo.GetNameByID(productID)
	if err != nil {
		return DeliveryProductPlaceholder
	}
	return name
}

func isValidOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusEnRoute, models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	default:
		return false
	}
}
