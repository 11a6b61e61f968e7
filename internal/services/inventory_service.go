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
	ErrValidation   = errors.New("validation error") // Generic validation error, shared across services
	ErrItemNotFound = errors.New("inventory item not found")
)

// Stock adjustment directions, as the mobile clients send them.
const (
	AdjustmentIn  = "entrada"
	AdjustmentOut = "saida"
)

// --- DTOs ---

// CreateInventoryItemRequest is used for registering a new cylinder product line.
type CreateInventoryItemRequest struct {
	Name         string `json:"name" binding:"required"`
	ItemType     string `json:"item_type"`
	FullCount    int    `json:"full_count"`
	EmptyCount   int    `json:"empty_count"`
	MinThreshold int    `json:"min_threshold"`
	MaxCapacity  int    `json:"max_capacity"`
}

// AdjustStockRequest moves full units in or out of stock.
type AdjustStockRequest struct {
	Direction string `json:"direction" binding:"required"`
	Amount    int    `json:"amount" binding:"required"`
}

// --- InventoryService Interface ---
type InventoryService interface {
	List() ([]models.InventoryItem, error)
	GetMetrics() (*models.InventoryMetrics, error)
	CreateItem(req CreateInventoryItemRequest) (*models.InventoryItem, error)
	Adjust(itemID string, req AdjustStockRequest) (*models.InventoryItem, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	db            *sql.DB
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(ir repositories.InventoryRepository, db *sql.DB) InventoryService {
	return &inventoryService{inventoryRepo: ir, db: db}
}

// Classify returns the alert tier for the given stock level: critical below
// the minimum threshold, low below 1.5x the threshold, normal otherwise.
// Pure and total; the tier is always recomputed, never stored.
func Classify(fullCount, minThreshold int) string {
	switch {
	case fullCount < minThreshold:
		return models.TierCritical
	case float64(fullCount) < 1.5*float64(minThreshold):
		return models.TierLow
	default:
		return models.TierNormal
	}
}

func (s *inventoryService) List() ([]models.InventoryItem, error) {
	items, err := s.inventoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	for i := range items {
		items[i].AlertTier = Classify(items[i].FullCount, items[i].MinThreshold)
	}
	return items, nil
}

func (s *inventoryService) GetMetrics() (*models.InventoryMetrics, error) {
	items, err := s.inventoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for metrics: %w", err)
	}

	metrics := &models.InventoryMetrics{}
	totalCapacity := 0
	for _, item := range items {
		metrics.TotalFull += item.FullCount
		metrics.TotalEmpty += item.EmptyCount
		totalCapacity += item.MaxCapacity
		if item.FullCount < item.MinThreshold {
			metrics.Alerts++
		}
	}
	if totalCapacity > 0 {
		metrics.CapacityPercent = Round1(float64(metrics.TotalFull) / float64(totalCapacity) * 100)
	}
	return metrics, nil
}

func (s *inventoryService) CreateItem(req CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if req.FullCount < 0 || req.EmptyCount < 0 || req.MinThreshold < 0 || req.MaxCapacity < 0 {
		return nil, fmt.Errorf("%w: stock counts cannot be negative", ErrValidation)
	}

	item := models.InventoryItem{
		Name:         req.Name,
		ItemType:     req.ItemType,
		FullCount:    req.FullCount,
		EmptyCount:   req.EmptyCount,
		MinThreshold: req.MinThreshold,
		MaxCapacity:  req.MaxCapacity,
		UpdatedAt:    time.Now(),
	}

	if _, err := s.inventoryRepo.Create(s.db, &item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	item.AlertTier = Classify(item.FullCount, item.MinThreshold)
	return &item, nil
}

// Adjust applies a bounded stock adjustment. Outbound adjustments clamp at
// zero; over-withdrawal is absorbed silently rather than rejected. Only the
// full-units count moves; empties are untouched.
func (s *inventoryService) Adjust(itemID string, req AdjustStockRequest) (*models.InventoryItem, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: adjustment amount must be positive", ErrValidation)
	}
	if req.Direction != AdjustmentIn && req.Direction != AdjustmentOut {
		return nil, fmt.Errorf("%w: unknown adjustment direction %q", ErrValidation, req.Direction)
	}

	item, err := s.inventoryRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch item for adjustment: %w", err)
	}

	newCount := item.FullCount + req.Amount
	if req.Direction == AdjustmentOut {
		newCount = item.FullCount - req.Amount
		if newCount < 0 {
			newCount = 0
		}
	}

	now := time.Now()
	if err := s.inventoryRepo.UpdateFullCount(s.db, itemID, newCount, now); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update stock for item %s: %w", itemID, err)
	}

	item.FullCount = newCount
	item.UpdatedAt = now
	item.AlertTier = Classify(item.FullCount, item.MinThreshold)
	return item, nil
}
