package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gasgestor_backend/internal/models"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order/delivery database operations.
type OrderRepository interface {
	Create(executor SQLExecutor, order *models.Order) (string, error)
	GetByID(orderID string) (*models.Order, error)
	List(filters models.OrderFilters) ([]models.Order, error)
	UpdateStatus(executor SQLExecutor, orderID, newStatus string, deliveredAt *time.Time) error

	// Aggregation feeds. Time bounds are ISO-8601 strings following the
	// store's inclusive day-boundary convention.
	CountByStatus() (map[string]int, error)
	CountCreatedBetween(startTS, endTS string) (int, error)
	ListCreatedSince(startTS string) ([]models.Order, error)
	ListDeliveredBetween(startTS, endTS string) ([]models.Order, error)
	ListRecentDelivered(limit int) ([]models.Order, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, client_name, client_address, status, product_id, quantity,
	              total_value, scheduled_time, delivered_time, created_at`

func scanOrder(rows *sql.Rows) (models.Order, error) {
	var o models.Order
	err := rows.Scan(
		&o.ID, &o.ClientName, &o.ClientAddress, &o.Status, &o.ProductID, &o.Quantity,
		&o.TotalValue, &o.ScheduledTime, &o.DeliveredTime, &o.CreatedAt,
	)
	return o, err
}

func (r *orderRepository) Create(executor SQLExecutor, order *models.Order) (string, error) {
	query := `INSERT INTO orders
	            (id, client_name, client_address, status, product_id, quantity,
	             total_value, scheduled_time, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := executor.Exec(query,
		order.ID, order.ClientName, order.ClientAddress, order.Status, order.ProductID,
		order.Quantity, order.TotalValue, order.ScheduledTime, order.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	return order.ID, nil
}

func (r *orderRepository) GetByID(orderID string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o models.Order
	err := r.db.QueryRow(query, orderID).Scan(
		&o.ID, &o.ClientName, &o.ClientAddress, &o.Status, &o.ProductID, &o.Quantity,
		&o.TotalValue, &o.ScheduledTime, &o.DeliveredTime, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %s: %v", ErrDatabaseError, orderID, err)
	}
	return &o, nil
}

func (r *orderRepository) List(filters models.OrderFilters) ([]models.Order, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + orderColumns + ` FROM orders`)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCounter))
		args = append(args, *filters.Status)
		argCounter++
	}
	if filters.Search != nil && *filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(client_name ILIKE $%d OR client_address ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+*filters.Search+"%")
		argCounter++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(executor SQLExecutor, orderID, newStatus string, deliveredAt *time.Time) error {
	query := `UPDATE orders SET status = $1, delivered_time = COALESCE($2, delivered_time) WHERE id = $3`
	result, err := executor.Exec(query, newStatus, deliveredAt, orderID)
	if err != nil {
		return fmt.Errorf("%w: updating order status for ID %s: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for order status update ID %s: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%w: counting orders by status: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: scanning status count: %v", ErrDatabaseError, err)
		}
		counts[status] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating status counts: %v", ErrDatabaseError, err)
	}
	return counts, nil
}

func (r *orderRepository) CountCreatedBetween(startTS, endTS string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM orders WHERE created_at >= $1 AND created_at <= $2`
	if err := r.db.QueryRow(query, startTS, endTS).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting orders between %s and %s: %v", ErrDatabaseError, startTS, endTS, err)
	}
	return count, nil
}

func (r *orderRepository) ListCreatedSince(startTS string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE created_at >= $1 ORDER BY created_at`
	return r.queryOrders(query, startTS)
}

func (r *orderRepository) ListDeliveredBetween(startTS, endTS string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
	          WHERE status = $1 AND created_at >= $2 AND created_at <= $3
	          ORDER BY created_at`
	return r.queryOrders(query, models.OrderStatusDelivered, startTS, endTS)
}

func (r *orderRepository) ListRecentDelivered(limit int) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
	          WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
	return r.queryOrders(query, models.OrderStatusDelivered, limit)
}

func (r *orderRepository) queryOrders(query string, args ...interface{}) ([]models.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, nil
}
