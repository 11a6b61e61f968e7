package models

// DashboardMetrics holds the headline figures of the dashboard screen.
// OrdersVariation is an absolute difference against yesterday; the revenue
// variation is a percentage with one decimal.
type DashboardMetrics struct {
	OrdersToday      int     `json:"orders_today"`
	OrdersVariation  int     `json:"orders_variation"`
	TotalClients     int     `json:"total_clients"` // distinct client names over the last 30 days
	NewClients       int     `json:"new_clients"`   // distinct client names today
	StockTotal       int     `json:"stock_total"`
	StockAlerts      int     `json:"stock_alerts"`
	RevenueToday     float64 `json:"revenue_today"`
	RevenueVariation float64 `json:"revenue_variation"`
}

// ChartPoint is one labelled point of a dashboard time series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
