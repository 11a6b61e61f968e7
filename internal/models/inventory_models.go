package models

import "time"

// Alert tiers derived from stock levels. Never persisted; always recomputed
// from the current counts.
const (
	TierCritical = "critical"
	TierLow      = "low"
	TierNormal   = "normal"
)

// InventoryItem represents one cylinder product line in stock. FullCount
// tracks filled units and is never negative; EmptyCount tracks returned
// empties awaiting refill.
type InventoryItem struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	ItemType     string    `json:"item_type" db:"item_type"`
	FullCount    int       `json:"full_count" db:"full_count"`
	EmptyCount   int       `json:"empty_count" db:"empty_count"`
	MinThreshold int       `json:"min_threshold" db:"min_threshold"`
	MaxCapacity  int       `json:"max_capacity" db:"max_capacity"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	AlertTier    string    `json:"alert_tier,omitempty"` // derived, filled in by the service
}

// InventoryMetrics summarizes the stock screen.
type InventoryMetrics struct {
	TotalFull       int     `json:"total_full"`
	TotalEmpty      int     `json:"total_empty"`
	Alerts          int     `json:"alerts"`
	CapacityPercent float64 `json:"capacity_percent"`
}
