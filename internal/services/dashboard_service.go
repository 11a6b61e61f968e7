package services

import (
	"fmt"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/repositories"
	"gasgestor_backend/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// clientWindowDays is how far back the dashboard looks when counting
// distinct clients.
const clientWindowDays = 30

// --- DashboardService Interface ---
type DashboardService interface {
	GetMetrics() (*models.DashboardMetrics, error)
	GetOrdersPerDay() ([]models.ChartPoint, error)
	GetRevenuePerDay() ([]models.ChartPoint, error)
}

type dashboardService struct {
	orderRepo       repositories.OrderRepository
	inventoryRepo   repositories.InventoryRepository
	transactionRepo repositories.TransactionRepository
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(
	or repositories.OrderRepository,
	ir repositories.InventoryRepository,
	tr repositories.TransactionRepository,
) DashboardService {
	return &dashboardService{orderRepo: or, inventoryRepo: ir, transactionRepo: tr}
}

// GetMetrics assembles the dashboard headline numbers. The independent reads
// run concurrently; the first failure aborts the batch.
func (s *dashboardService) GetMetrics() (*models.DashboardMetrics, error) {
	now := time.Now()
	today := utils.FormatISODate(now)
	yesterday := utils.FormatISODate(now.AddDate(0, 0, -1))

	var (
		ordersToday, ordersYesterday int
		items                        []models.InventoryItem
		recentOrders                 []models.Order
		revenueTransactions          []models.Transaction
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		ordersToday, err = s.orderRepo.CountCreatedBetween(utils.DayStart(today), utils.DayEnd(today))
		return err
	})
	g.Go(func() (err error) {
		ordersYesterday, err = s.orderRepo.CountCreatedBetween(utils.DayStart(yesterday), utils.DayEnd(yesterday))
		return err
	})
	g.Go(func() (err error) {
		items, err = s.inventoryRepo.List()
		return err
	})
	g.Go(func() (err error) {
		clientWindow := utils.DayStart(utils.FormatISODate(now.AddDate(0, 0, -clientWindowDays)))
		recentOrders, err = s.orderRepo.ListCreatedSince(clientWindow)
		return err
	})
	g.Go(func() (err error) {
		revenueTransactions, err = s.transactionRepo.ListPaidRevenueSince(yesterday)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard metrics: %w", err)
	}

	metrics := &models.DashboardMetrics{
		OrdersToday:     ordersToday,
		OrdersVariation: ordersToday - ordersYesterday,
	}

	for _, item := range items {
		metrics.StockTotal += item.FullCount
		if item.FullCount < item.MinThreshold {
			metrics.StockAlerts++
		}
	}

	// TotalClients and NewClients are independent distinct sets: a repeat
	// client ordering today counts toward NewClients regardless of where
	// their earlier orders sit in the window.
	seen := make(map[string]bool)
	seenToday := make(map[string]bool)
	for _, o := range recentOrders {
		if !seen[o.ClientName] {
			seen[o.ClientName] = true
			metrics.TotalClients++
		}
		if !seenToday[o.ClientName] && utils.WithinDay(utils.FormatISOTimestamp(o.CreatedAt), today) {
			seenToday[o.ClientName] = true
			metrics.NewClients++
		}
	}

	revenueEntries := transactionsToDatedValues(revenueTransactions)
	metrics.RevenueToday = SumOnDay(revenueEntries, today)
	metrics.RevenueVariation = PercentDelta(metrics.RevenueToday, SumOnDay(revenueEntries, yesterday))

	return metrics, nil
}

// GetOrdersPerDay returns the order counts for the last seven calendar days,
// oldest first, labeled by day of month.
func (s *dashboardService) GetOrdersPerDay() ([]models.ChartPoint, error) {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -6)

	orders, err := s.orderRepo.ListCreatedSince(utils.DayStart(utils.FormatISODate(windowStart)))
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for daily chart: %w", err)
	}

	timestamps := make([]string, 0, len(orders))
	for _, o := range orders {
		timestamps = append(timestamps, utils.FormatISOTimestamp(o.CreatedAt))
	}

	points := make([]models.ChartPoint, 7)
	for i := 0; i < 7; i++ {
		day := windowStart.AddDate(0, 0, i)
		points[i] = models.ChartPoint{
			Label: dayOfMonthLabel(day),
			Value: float64(CountOnDay(timestamps, utils.FormatISODate(day))),
		}
	}
	return points, nil
}

// GetRevenuePerDay returns the paid revenue for the last seven calendar days,
// oldest first, labeled by day of month.
func (s *dashboardService) GetRevenuePerDay() ([]models.ChartPoint, error) {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -6)

	transactions, err := s.transactionRepo.ListPaidRevenueSince(utils.FormatISODate(windowStart))
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue for daily chart: %w", err)
	}

	entries := transactionsToDatedValues(transactions)
	points := make([]models.ChartPoint, 7)
	for i := 0; i < 7; i++ {
		day := windowStart.AddDate(0, 0, i)
		points[i] = models.ChartPoint{
			Label: dayOfMonthLabel(day),
			Value: SumOnDay(entries, utils.FormatISODate(day)),
		}
	}
	return points, nil
}

func transactionsToDatedValues(transactions []models.Transaction) []DatedValue {
	entries := make([]DatedValue, 0, len(transactions))
	for _, t := range transactions {
		entries = append(entries, DatedValue{Date: t.TransactionDate, Value: t.Value})
	}
	return entries
}
