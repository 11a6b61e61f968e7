package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"gasgestor_backend/internal/models"

	"github.com/google/uuid"
)

// TransactionRepository defines the interface for financial transaction
// database operations. Transaction dates are plain YYYY-MM-DD values.
type TransactionRepository interface {
	Create(executor SQLExecutor, t *models.Transaction) (string, error)
	ListOnDate(date string) ([]models.Transaction, error)
	ListSinceDate(date string) ([]models.Transaction, error)
	ListPaidRevenueSince(date string) ([]models.Transaction, error)
	ListRecent(limit int) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, kind, description, value, category, transaction_date, status, payment_id, created_at`

func (r *transactionRepository) Create(executor SQLExecutor, t *models.Transaction) (string, error) {
	query := `INSERT INTO transactions
	            (id, kind, description, value, category, transaction_date, status, payment_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := executor.Exec(query,
		t.ID, t.Kind, t.Description, t.Value, t.Category, t.TransactionDate,
		t.Status, t.PaymentID, t.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating transaction: %v", ErrDatabaseError, err)
	}
	return t.ID, nil
}

func (r *transactionRepository) ListOnDate(date string) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_date = $1`
	return r.queryTransactions(query, date)
}

func (r *transactionRepository) ListSinceDate(date string) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_date >= $1`
	return r.queryTransactions(query, date)
}

func (r *transactionRepository) ListPaidRevenueSince(date string) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
	          WHERE kind = $1 AND status = $2 AND transaction_date >= $3`
	return r.queryTransactions(query, models.TransactionKindRevenue, models.TransactionStatusPaid, date)
}

func (r *transactionRepository) ListRecent(limit int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC LIMIT $1`
	return r.queryTransactions(query, limit)
}

func (r *transactionRepository) queryTransactions(query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying transactions: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.ID, &t.Kind, &t.Description, &t.Value, &t.Category, &t.TransactionDate,
			&t.Status, &t.PaymentID, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning transaction: %v", ErrDatabaseError, err)
		}
		transactions = append(transactions, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating transaction rows: %v", ErrDatabaseError, err)
	}
	return transactions, nil
}
