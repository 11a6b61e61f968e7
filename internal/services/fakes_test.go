package services_test

import (
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/repositories"
)

// Hand-written repository fakes. Function fields override behavior per test;
// unset read methods return empty results and unset lookups return ErrNotFound.

type fakeInventoryRepo struct {
	listFn    func() ([]models.InventoryItem, error)
	getByIDFn func(itemID string) (*models.InventoryItem, error)
	names     map[string]string

	createdItems []*models.InventoryItem

	updatedID    string
	updatedCount int
	updatedAt    time.Time
	updateErr    error
}

func (f *fakeInventoryRepo) List() ([]models.InventoryItem, error) {
	if f.listFn != nil {
		return f.listFn()
	}
	return []models.InventoryItem{}, nil
}

func (f *fakeInventoryRepo) GetByID(itemID string) (*models.InventoryItem, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(itemID)
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeInventoryRepo) GetNameByID(itemID string) (string, error) {
	if name, ok := f.names[itemID]; ok {
		return name, nil
	}
	return "", repositories.ErrNotFound
}

func (f *fakeInventoryRepo) Create(_ repositories.SQLExecutor, item *models.InventoryItem) (string, error) {
	if item.ID == "" {
		item.ID = "item-fake-id"
	}
	f.createdItems = append(f.createdItems, item)
	return item.ID, nil
}

func (f *fakeInventoryRepo) UpdateFullCount(_ repositories.SQLExecutor, itemID string, newCount int, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = itemID
	f.updatedCount = newCount
	f.updatedAt = updatedAt
	return nil
}

type fakeOrderRepo struct {
	getByIDFn              func(orderID string) (*models.Order, error)
	listFn                 func(filters models.OrderFilters) ([]models.Order, error)
	countByStatusFn        func() (map[string]int, error)
	countCreatedBetweenFn  func(startTS, endTS string) (int, error)
	listCreatedSinceFn     func(startTS string) ([]models.Order, error)
	listDeliveredBetweenFn func(startTS, endTS string) ([]models.Order, error)
	listRecentDeliveredFn  func(limit int) ([]models.Order, error)

	createdOrders []*models.Order

	statusUpdateID    string
	statusUpdateValue string
	statusUpdateAt    *time.Time
	statusUpdateErr   error
}

func (f *fakeOrderRepo) Create(_ repositories.SQLExecutor, order *models.Order) (string, error) {
	if order.ID == "" {
		order.ID = "order-fake-id"
	}
	f.createdOrders = append(f.createdOrders, order)
	return order.ID, nil
}

func (f *fakeOrderRepo) GetByID(orderID string) (*models.Order, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(orderID)
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOrderRepo) List(filters models.OrderFilters) ([]models.Order, error) {
	if f.listFn != nil {
		return f.listFn(filters)
	}
	return []models.Order{}, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ repositories.SQLExecutor, orderID, newStatus string, deliveredAt *time.Time) error {
	if f.statusUpdateErr != nil {
		return f.statusUpdateErr
	}
	f.statusUpdateID = orderID
	f.statusUpdateValue = newStatus
	f.statusUpdateAt = deliveredAt
	return nil
}

func (f *fakeOrderRepo) CountByStatus() (map[string]int, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn()
	}
	return map[string]int{}, nil
}

func (f *fakeOrderRepo) CountCreatedBetween(startTS, endTS string) (int, error) {
	if f.countCreatedBetweenFn != nil {
		return f.countCreatedBetweenFn(startTS, endTS)
	}
	return 0, nil
}

func (f *fakeOrderRepo) ListCreatedSince(startTS string) ([]models.Order, error) {
	if f.listCreatedSinceFn != nil {
		return f.listCreatedSinceFn(startTS)
	}
	return []models.Order{}, nil
}

func (f *fakeOrderRepo) ListDeliveredBetween(startTS, endTS string) ([]models.Order, error) {
	if f.listDeliveredBetweenFn != nil {
		return f.listDeliveredBetweenFn(startTS, endTS)
	}
	return []models.Order{}, nil
}

func (f *fakeOrderRepo) ListRecentDelivered(limit int) ([]models.Order, error) {
	if f.listRecentDeliveredFn != nil {
		return f.listRecentDeliveredFn(limit)
	}
	return []models.Order{}, nil
}

type fakeTransactionRepo struct {
	listOnDateFn           func(date string) ([]models.Transaction, error)
	listSinceDateFn        func(date string) ([]models.Transaction, error)
	listPaidRevenueSinceFn func(date string) ([]models.Transaction, error)
	listRecentFn           func(limit int) ([]models.Transaction, error)

	created   []*models.Transaction
	createErr error
}

func (f *fakeTransactionRepo) Create(_ repositories.SQLExecutor, t *models.Transaction) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if t.ID == "" {
		t.ID = "tx-fake-id"
	}
	f.created = append(f.created, t)
	return t.ID, nil
}

func (f *fakeTransactionRepo) ListOnDate(date string) ([]models.Transaction, error) {
	if f.listOnDateFn != nil {
		return f.listOnDateFn(date)
	}
	return []models.Transaction{}, nil
}

func (f *fakeTransactionRepo) ListSinceDate(date string) ([]models.Transaction, error) {
	if f.listSinceDateFn != nil {
		return f.listSinceDateFn(date)
	}
	return []models.Transaction{}, nil
}

func (f *fakeTransactionRepo) ListPaidRevenueSince(date string) ([]models.Transaction, error) {
	if f.listPaidRevenueSinceFn != nil {
		return f.listPaidRevenueSinceFn(date)
	}
	return []models.Transaction{}, nil
}

func (f *fakeTransactionRepo) ListRecent(limit int) ([]models.Transaction, error) {
	if f.listRecentFn != nil {
		return f.listRecentFn(limit)
	}
	return []models.Transaction{}, nil
}

type fakePaymentRepo struct {
	listFn    func(status *string) ([]models.Payment, error)
	getByIDFn func(paymentID string) (*models.Payment, error)

	createdPayments []*models.Payment

	markPaidID   string
	markPaidDate string
	markPaidErr  error
}

func (f *fakePaymentRepo) List(status *string) ([]models.Payment, error) {
	if f.listFn != nil {
		return f.listFn(status)
	}
	return []models.Payment{}, nil
}

func (f *fakePaymentRepo) GetByID(paymentID string) (*models.Payment, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(paymentID)
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePaymentRepo) Create(_ repositories.SQLExecutor, p *models.Payment) (string, error) {
	if p.ID == "" {
		p.ID = "payment-fake-id"
	}
	f.createdPayments = append(f.createdPayments, p)
	return p.ID, nil
}

func (f *fakePaymentRepo) MarkPaid(_ repositories.SQLExecutor, paymentID, paymentDate string) error {
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	f.markPaidID = paymentID
	f.markPaidDate = paymentDate
	return nil
}
