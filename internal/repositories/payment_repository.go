package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gasgestor_backend/internal/models"

	"github.com/google/uuid"
)

// PaymentRepository defines the interface for supplier payment database operations.
type PaymentRepository interface {
	List(status *string) ([]models.Payment, error)
	GetByID(paymentID string) (*models.Payment, error)
	Create(executor SQLExecutor, p *models.Payment) (string, error)
	MarkPaid(executor SQLExecutor, paymentID, paymentDate string) error
}

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, supplier_name, supplier_contact, description, value, due_date, status, payment_date, created_at`

func scanPayment(scan func(dest ...interface{}) error) (models.Payment, error) {
	var p models.Payment
	err := scan(
		&p.ID, &p.SupplierName, &p.SupplierContact, &p.Description, &p.Value,
		&p.DueDate, &p.Status, &p.PaymentDate, &p.CreatedAt,
	)
	return p, err
}

func (r *paymentRepository) List(status *string) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	var args []interface{}
	if status != nil && *status != "" {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY due_date ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

func (r *paymentRepository) GetByID(paymentID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.db.QueryRow(query, paymentID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting payment by ID %s: %v", ErrDatabaseError, paymentID, err)
	}
	return &p, nil
}

func (r *paymentRepository) Create(executor SQLExecutor, p *models.Payment) (string, error) {
	query := `INSERT INTO payments
	            (id, supplier_name, supplier_contact, description, value, due_date, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	_, err := executor.Exec(query,
		p.ID, p.SupplierName, p.SupplierContact, p.Description, p.Value,
		p.DueDate, p.Status, p.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating payment: %v", ErrDatabaseError, err)
	}
	return p.ID, nil
}

func (r *paymentRepository) MarkPaid(executor SQLExecutor, paymentID, paymentDate string) error {
	query := `UPDATE payments SET status = $1, payment_date = $2 WHERE id = $3`
	result, err := executor.Exec(query, models.PaymentStatusPaid, paymentDate, paymentID)
	if err != nil {
		return fmt.Errorf("%w: marking payment %s paid: %v", ErrDatabaseError, paymentID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for payment %s: %v", ErrDatabaseError, paymentID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
