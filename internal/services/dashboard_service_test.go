package services_test

import (
	"testing"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/services"
	"gasgestor_backend/pkg/utils"
)

func TestDashboardMetrics(t *testing.T) {
	now := time.Now()
	today := utils.FormatISODate(now)
	yesterday := utils.FormatISODate(now.AddDate(0, 0, -1))

	orderRepo := &fakeOrderRepo{
		countCreatedBetweenFn: func(startTS, endTS string) (int, error) {
			switch startTS {
			case utils.DayStart(today):
				return 12, nil
			case utils.DayStart(yesterday):
				return 9, nil
			}
			return 0, nil
		},
		listCreatedSinceFn: func(string) ([]models.Order, error) {
			// Oldest first, matching the repository's ORDER BY created_at.
			// Maria is a repeat client whose latest order is today.
			return []models.Order{
				{ClientName: "Padaria Central", CreatedAt: now.AddDate(0, 0, -20)},
				{ClientName: "João Souza", CreatedAt: now.AddDate(0, 0, -10)},
				{ClientName: "Maria Silva", CreatedAt: now.AddDate(0, 0, -3)},
				{ClientName: "Maria Silva", CreatedAt: now},
			}, nil
		},
	}
	inventoryRepo := &fakeInventoryRepo{
		listFn: func() ([]models.InventoryItem, error) {
			return []models.InventoryItem{
				{FullCount: 30, MinThreshold: 40}, // alert
				{FullCount: 45, MinThreshold: 10},
			}, nil
		},
	}
	txRepo := &fakeTransactionRepo{
		listPaidRevenueSinceFn: func(date string) ([]models.Transaction, error) {
			if date != yesterday {
				t.Errorf("ListPaidRevenueSince called with %s, want %s", date, yesterday)
			}
			return []models.Transaction{
				{Value: 500, TransactionDate: today},
				{Value: 400, TransactionDate: yesterday},
			}, nil
		},
	}

	svc := services.NewDashboardService(orderRepo, inventoryRepo, txRepo)
	metrics, err := svc.GetMetrics()
	if err != nil {
		t.Fatalf("GetMetrics returned error: %v", err)
	}

	if metrics.OrdersToday != 12 {
		t.Errorf("OrdersToday = %d, want 12", metrics.OrdersToday)
	}
	if metrics.OrdersVariation != 3 {
		t.Errorf("OrdersVariation = %d, want 3 (absolute difference, not a percentage)", metrics.OrdersVariation)
	}
	if metrics.TotalClients != 3 {
		t.Errorf("TotalClients = %d, want 3 distinct clients", metrics.TotalClients)
	}
	if metrics.NewClients != 1 {
		t.Errorf("NewClients = %d, want 1 (a repeat client ordering today still counts)", metrics.NewClients)
	}
	if metrics.StockTotal != 75 {
		t.Errorf("StockTotal = %d, want 75", metrics.StockTotal)
	}
	if metrics.StockAlerts != 1 {
		t.Errorf("StockAlerts = %d, want 1", metrics.StockAlerts)
	}
	if metrics.RevenueToday != 500 {
		t.Errorf("RevenueToday = %v, want 500", metrics.RevenueToday)
	}
	if metrics.RevenueVariation != 25.0 {
		t.Errorf("RevenueVariation = %v, want 25.0", metrics.RevenueVariation)
	}
}

func TestDashboardNewClientsCountsRepeatClients(t *testing.T) {
	now := time.Now()
	orderRepo := &fakeOrderRepo{
		listCreatedSinceFn: func(string) ([]models.Order, error) {
			// Oldest first; the only order today comes from a client already
			// seen earlier in the window.
			return []models.Order{
				{ClientName: "Maria Silva", CreatedAt: now.AddDate(0, 0, -3)},
				{ClientName: "Maria Silva", CreatedAt: now},
			}, nil
		},
	}
	svc := services.NewDashboardService(orderRepo, &fakeInventoryRepo{}, &fakeTransactionRepo{})

	metrics, err := svc.GetMetrics()
	if err != nil {
		t.Fatalf("GetMetrics returned error: %v", err)
	}
	if metrics.TotalClients != 1 {
		t.Errorf("TotalClients = %d, want 1", metrics.TotalClients)
	}
	if metrics.NewClients != 1 {
		t.Errorf("NewClients = %d, want 1 (distinct clients with an order today)", metrics.NewClients)
	}
}

func TestDashboardOrdersPerDay(t *testing.T) {
	now := time.Now()
	orderRepo := &fakeOrderRepo{
		listCreatedSinceFn: func(string) ([]models.Order, error) {
			return []models.Order{
				{CreatedAt: now},
				{CreatedAt: now},
				{CreatedAt: now.AddDate(0, 0, -2)},
			}, nil
		},
	}
	svc := services.NewDashboardService(orderRepo, &fakeInventoryRepo{}, &fakeTransactionRepo{})

	points, err := svc.GetOrdersPerDay()
	if err != nil {
		t.Fatalf("GetOrdersPerDay returned error: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("chart has %d points, want 7", len(points))
	}
	if points[6].Value != 2 {
		t.Errorf("today's point = %v, want 2", points[6].Value)
	}
	if points[4].Value != 1 {
		t.Errorf("two days ago point = %v, want 1", points[4].Value)
	}
	if points[0].Value != 0 {
		t.Errorf("oldest point = %v, want 0", points[0].Value)
	}
	wantLabel := utils.FormatISODate(now)[8:]
	if wantLabel[0] == '0' {
		wantLabel = wantLabel[1:]
	}
	if points[6].Label != wantLabel {
		t.Errorf("today's label = %s, want day of month %s", points[6].Label, wantLabel)
	}
}

func TestDashboardRevenuePerDay(t *testing.T) {
	now := time.Now()
	today := utils.FormatISODate(now)
	threeDaysAgo := utils.FormatISODate(now.AddDate(0, 0, -3))

	txRepo := &fakeTransactionRepo{
		listPaidRevenueSinceFn: func(string) ([]models.Transaction, error) {
			return []models.Transaction{
				{Value: 300, TransactionDate: today},
				{Value: 120, TransactionDate: today},
				{Value: 75, TransactionDate: threeDaysAgo},
			}, nil
		},
	}
	svc := services.NewDashboardService(&fakeOrderRepo{}, &fakeInventoryRepo{}, txRepo)

	points, err := svc.GetRevenuePerDay()
	if err != nil {
		t.Fatalf("GetRevenuePerDay returned error: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("chart has %d points, want 7", len(points))
	}
	if points[6].Value != 420 {
		t.Errorf("today's point = %v, want 420", points[6].Value)
	}
	if points[3].Value != 75 {
		t.Errorf("three days ago point = %v, want 75", points[3].Value)
	}
}
