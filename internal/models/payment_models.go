package models

import "time"

// Payment statuses as stored by the record store. A payment never leaves
// "pago" once settled; "atrasado" is written by an external process and is
// read, not computed, here.
const (
	PaymentStatusPaid    = "pago"
	PaymentStatusPending = "pendente"
	PaymentStatusLate    = "atrasado"
)

// Payment is a scheduled supplier payment.
type Payment struct {
	ID              string    `json:"id" db:"id"`
	SupplierName    string    `json:"supplier_name" db:"supplier_name" binding:"required"`
	SupplierContact string    `json:"supplier_contact" db:"supplier_contact"`
	Description     string    `json:"description" db:"description"`
	Value           float64   `json:"value" db:"value" binding:"required,gt=0"`
	DueDate         string    `json:"due_date" db:"due_date"` // YYYY-MM-DD
	Status          string    `json:"status" db:"status"`
	PaymentDate     *string   `json:"payment_date,omitempty" db:"payment_date"` // YYYY-MM-DD, set on settlement
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// PaymentsSummary totals payment values per status across all rows.
type PaymentsSummary struct {
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
	TotalLate    float64 `json:"total_late"`
}
