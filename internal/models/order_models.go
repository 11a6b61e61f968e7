package models

import "time"

// Order statuses as stored by the record store. The mobile clients predate
// this backend and already speak these values, so they stay as-is on the wire.
const (
	OrderStatusPending   = "pendente"
	OrderStatusEnRoute   = "em_rota"
	OrderStatusDelivered = "entregue"
	OrderStatusCancelled = "cancelado"
)

// Order represents a cylinder order / delivery. Client data is denormalized
// onto the row; the product is referenced by ID without a foreign key.
type Order struct {
	ID            string     `json:"id" db:"id"`
	ClientName    string     `json:"client_name" db:"client_name" binding:"required"`
	ClientAddress string     `json:"client_address" db:"client_address"`
	Status        string     `json:"status" db:"status"`
	ProductID     string     `json:"product_id" db:"product_id"`
	ProductName   string     `json:"product_name,omitempty"` // resolved at read time, never stored
	Quantity      int        `json:"quantity" db:"quantity"`
	TotalValue    float64    `json:"total_value" db:"total_value"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty" db:"scheduled_time"`
	DeliveredTime *time.Time `json:"delivered_time,omitempty" db:"delivered_time"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// OrderFilters narrows order listings.
type OrderFilters struct {
	Status *string
	Search *string
}

// DeliveryMetrics summarizes the delivery board by status.
type DeliveryMetrics struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	EnRoute   int `json:"en_route"`
	Delivered int `json:"delivered"`
}
