package services

import (
	"database/sql"
	"fmt"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/repositories"
	"gasgestor_backend/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// SalesProductPlaceholder replaces the product name in sales rankings and
// activity feeds when the inventory row cannot be resolved.
const SalesProductPlaceholder = "Produto"

const recentActivityLimit = 10

// weekdayLabels are the chart labels the mobile clients expect, indexed by
// time.Weekday (Sunday first).
var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// --- DTOs ---

// CreateTransactionRequest registers a manual financial entry.
type CreateTransactionRequest struct {
	Kind            string  `json:"kind" binding:"required"`
	Description     string  `json:"description"`
	Value           float64 `json:"value" binding:"required"`
	Category        string  `json:"category"`
	TransactionDate string  `json:"transaction_date"` // YYYY-MM-DD, defaults to today
	Status          string  `json:"status"`           // defaults to paid
}

// --- BillingService Interface ---
type BillingService interface {
	GetSummary() (*models.BillingSummary, error)
	GetWeeklyBreakdown() ([]models.BillingDay, error)
	GetSalesByProduct() ([]models.ProductSales, error)
	GetRecentActivity() ([]models.ActivityEntry, error)
	CreateTransaction(req CreateTransactionRequest) (*models.Transaction, error)
}

type billingService struct {
	transactionRepo repositories.TransactionRepository
	orderRepo       repositories.OrderRepository
	inventoryRepo   repositories.InventoryRepository
	db              *sql.DB
}

// NewBillingService creates a new instance of BillingService.
func NewBillingService(
	tr repositories.TransactionRepository,
	or repositories.OrderRepository,
	ir repositories.InventoryRepository,
	db *sql.DB,
) BillingService {
	return &billingService{
		transactionRepo: tr,
		orderRepo:       or,
		inventoryRepo:   ir,
		db:              db,
	}
}

// GetSummary computes the billing headline figures. Revenue merges paid and
// pending revenue transactions with delivered orders at read time; the
// merged order revenue is never written back into the transactions table.
// The independent reads run concurrently; the first failure aborts the batch.
func (s *billingService) GetSummary() (*models.BillingSummary, error) {
	now := time.Now()
	today := utils.FormatISODate(now)
	yesterday := utils.FormatISODate(now.AddDate(0, 0, -1))
	weekStart := utils.FormatISODate(utils.WeekStart(now))

	var (
		txToday, txYesterday, txWeek             []models.Transaction
		ordersToday, ordersYesterday, ordersWeek []models.Order
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		txToday, err = s.transactionRepo.ListOnDate(today)
		return err
	})
	g.Go(func() (err error) {
		txYesterday, err = s.transactionRepo.ListOnDate(yesterday)
		return err
	})
	g.Go(func() (err error) {
		txWeek, err = s.transactionRepo.ListSinceDate(weekStart)
		return err
	})
	g.Go(func() (err error) {
		ordersToday, err = s.orderRepo.ListDeliveredBetween(utils.DayStart(today), utils.DayEnd(today))
		return err
	})
	g.Go(func() (err error) {
		ordersYesterday, err = s.orderRepo.ListDeliveredBetween(utils.DayStart(yesterday), utils.DayEnd(yesterday))
		return err
	})
	g.Go(func() (err error) {
		ordersWeek, err = s.orderRepo.ListDeliveredBetween(utils.DayStart(weekStart), utils.DayEnd(today))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load billing summary data: %w", err)
	}

	revenueToday := sumTransactions(txToday, models.TransactionKindRevenue) + sumOrderValues(ordersToday)
	revenueYesterday := sumTransactions(txYesterday, models.TransactionKindRevenue) + sumOrderValues(ordersYesterday)

	return &models.BillingSummary{
		RevenueToday:   revenueToday,
		ExpensesToday:  sumTransactions(txToday, models.TransactionKindExpense),
		RevenueWeek:    sumTransactions(txWeek, models.TransactionKindRevenue) + sumOrderValues(ordersWeek),
		ExpensesWeek:   sumTransactions(txWeek, models.TransactionKindExpense),
		VariationToday: PercentDelta(revenueToday, revenueYesterday),
	}, nil
}

// GetWeeklyBreakdown returns revenue and expenses per day for the current
// Monday-start week. Transactions bucket by their plain date; delivered
// orders bucket by the date prefix of their creation timestamp.
func (s *billingService) GetWeeklyBreakdown() ([]models.BillingDay, error) {
	now := time.Now()
	weekStart := utils.WeekStart(now)
	today := utils.FormatISODate(now)

	var (
		transactions []models.Transaction
		orders       []models.Order
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		transactions, err = s.transactionRepo.ListSinceDate(utils.FormatISODate(weekStart))
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orderRepo.ListDeliveredBetween(utils.DayStart(utils.FormatISODate(weekStart)), utils.DayEnd(today))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load weekly breakdown data: %w", err)
	}

	var revenueEntries, expenseEntries []DatedValue
	for _, t := range transactions {
		entry := DatedValue{Date: t.TransactionDate, Value: t.Value}
		if t.Kind == models.TransactionKindRevenue {
			revenueEntries = append(revenueEntries, entry)
		} else {
			expenseEntries = append(expenseEntries, entry)
		}
	}
	for _, o := range orders {
		revenueEntries = append(revenueEntries, DatedValue{
			Date:  utils.FormatISOTimestamp(o.CreatedAt),
			Value: o.TotalValue,
		})
	}

	revenue := WeeklySeries(revenueEntries, weekStart)
	expenses := WeeklySeries(expenseEntries, weekStart)

	days := make([]models.BillingDay, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		days[i] = models.BillingDay{
			Date:     revenue[i].Date,
			Weekday:  weekdayLabels[date.Weekday()],
			Revenue:  revenue[i].Value,
			Expenses: expenses[i].Value,
		}
	}
	return days, nil
}

// GetSalesByProduct ranks delivered-order revenue per product since the
// start of the week, descending by total.
func (s *billingService) GetSalesByProduct() ([]models.ProductSales, error) {
	now := time.Now()
	weekStart := utils.FormatISODate(utils.WeekStart(now))
	today := utils.FormatISODate(now)

	orders, err := s.orderRepo.ListDeliveredBetween(utils.DayStart(weekStart), utils.DayEnd(today))
	if err != nil {
		return nil, fmt.Errorf("failed to load delivered orders for sales ranking: %w", err)
	}

	entries := []KeyedValue{}
	for _, o := range orders {
		if o.ProductID == "" {
			continue
		}
		entries = append(entries, KeyedValue{Key: o.ProductID, Value: o.TotalValue})
	}

	totals := SumByKey(entries)
	sales := make([]models.ProductSales, 0, len(totals))
	for _, t := range totals {
		sales = append(sales, models.ProductSales{
			Name:  s.resolveProductName(t.Key),
			Total: t.Total,
		})
	}
	return sales, nil
}

// GetRecentActivity merges the latest transactions and delivered orders into
// one feed, tagged by origin and sorted descending by date.
func (s *billingService) GetRecentActivity() ([]models.ActivityEntry, error) {
	var (
		transactions []models.Transaction
		orders       []models.Order
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		transactions, err = s.transactionRepo.ListRecent(recentActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orderRepo.ListRecentDelivered(recentActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}

	fromTransactions := make([]models.ActivityEntry, 0, len(transactions))
	for _, t := range transactions {
		fromTransactions = append(fromTransactions, models.ActivityEntry{
			ID:          t.ID,
			Kind:        t.Kind,
			Description: t.Description,
			Value:       t.Value,
			Date:        t.TransactionDate,
			Status:      t.Status,
			Source:      models.ActivitySourceTransaction,
		})
	}

	fromOrders := make([]models.ActivityEntry, 0, len(orders))
	for _, o := range orders {
		fromOrders = append(fromOrders, models.ActivityEntry{
			ID:          o.ID,
			Kind:        models.TransactionKindRevenue,
			Description: fmt.Sprintf("Pedido - %s (%s)", o.ClientName, s.resolveProductName(o.ProductID)),
			Value:       o.TotalValue,
			Date:        utils.FormatISOTimestamp(o.CreatedAt),
			Status:      models.OrderStatusDelivered,
			Source:      models.ActivitySourceOrder,
		})
	}

	return MergeRecentActivity(fromTransactions, fromOrders, recentActivityLimit), nil
}

func (s *billingService) CreateTransaction(req CreateTransactionRequest) (*models.Transaction, error) {
	if req.Kind != models.TransactionKindRevenue && req.Kind != models.TransactionKindExpense {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", ErrValidation, req.Kind)
	}
	if req.Value <= 0 {
		return nil, fmt.Errorf("%w: transaction value must be positive", ErrValidation)
	}
	if req.TransactionDate == "" {
		req.TransactionDate = utils.FormatISODate(time.Now())
	} else if _, err := time.Parse(utils.ISODateLayout, req.TransactionDate); err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date %q, expected YYYY-MM-DD", ErrValidation, req.TransactionDate)
	}
	if req.Status == "" {
		req.Status = models.TransactionStatusPaid
	}

	transaction := models.Transaction{
		Kind:            req.Kind,
		Description:     req.Description,
		Value:           req.Value,
		Category:        req.Category,
		TransactionDate: req.TransactionDate,
		Status:          req.Status,
		CreatedAt:       time.Now(),
	}
	if _, err := s.transactionRepo.Create(s.db, &transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &transaction, nil
}

// resolveProductName falls back to the short placeholder used by billing
// screens; a missing product never fails the aggregation.
func (s *billingService) resolveProductName(productID string) string {
	if productID == "" {
		return SalesProductPlaceholder
	}
	name, err := s.inventoryRepo.GetNameByID(productID)
	if err != nil {
		return SalesProductPlaceholder
	}
	return name
}

func sumTransactions(transactions []models.Transaction, kind string) float64 {
	var total float64
	for _, t := range transactions {
		if t.Kind == kind {
			total += t.Value
		}
	}
	return total
}

func sumOrderValues(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.TotalValue
	}
	return total
}
