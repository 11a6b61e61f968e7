package models

import "time"

// Transaction kinds and statuses as stored by the record store.
const (
	TransactionKindRevenue = "receita"
	TransactionKindExpense = "despesa"

	TransactionStatusPaid    = "pago"
	TransactionStatusPending = "pendente"
)

// Transaction is an independent financial entry. Revenue from delivered
// orders is merged with these rows at read time for reporting and is never
// written back into this table.
type Transaction struct {
	ID              string    `json:"id" db:"id"`
	Kind            string    `json:"kind" db:"kind" binding:"required"`
	Description     string    `json:"description" db:"description"`
	Value           float64   `json:"value" db:"value" binding:"required,gt=0"`
	Category        string    `json:"category" db:"category"`
	TransactionDate string    `json:"transaction_date" db:"transaction_date"` // YYYY-MM-DD
	Status          string    `json:"status" db:"status"`
	PaymentID       *string   `json:"payment_id,omitempty" db:"payment_id"` // set when mirrored from a settled payment
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// BillingSummary holds the headline figures of the billing screen.
type BillingSummary struct {
	RevenueToday   float64 `json:"revenue_today"`
	ExpensesToday  float64 `json:"expenses_today"`
	RevenueWeek    float64 `json:"revenue_week"`
	ExpensesWeek   float64 `json:"expenses_week"`
	VariationToday float64 `json:"variation_today"` // percent vs yesterday, one decimal
}

// BillingDay is one calendar-day bucket of the weekly breakdown.
type BillingDay struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Weekday  string  `json:"weekday"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// ProductSales is one row of the sales-by-product ranking.
type ProductSales struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// Activity feed origins.
const (
	ActivitySourceTransaction = "transacao"
	ActivitySourceOrder       = "pedido"
)

// ActivityEntry is one row of the merged recent-activity feed. Entries come
// from two heterogeneous streams (transactions and delivered orders) and are
// tagged with their origin.
type ActivityEntry struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Date        string  `json:"date"` // ISO-8601, date or timestamp depending on source
	Status      string  `json:"status"`
	Source      string  `json:"source"`
}
