package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/repositories"
	"gasgestor_backend/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentAlreadySettled = errors.New("payment already settled")
)

// --- DTOs ---

// CreatePaymentRequest registers a new supplier obligation. Any status on
// input is ignored; new payments always start pending.
type CreatePaymentRequest struct {
	SupplierName    string  `json:"supplier_name" binding:"required"`
	SupplierContact string  `json:"supplier_contact"`
	Description     string  `json:"description"`
	Value           float64 `json:"value" binding:"required"`
	DueDate         string  `json:"due_date" binding:"required"` // YYYY-MM-DD
}

// --- PaymentService Interface ---
type PaymentService interface {
	List(status *string) ([]models.Payment, error)
	GetSummary() (*models.PaymentsSummary, error)
	Create(req CreatePaymentRequest) (*models.Payment, error)
	Settle(paymentID string) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo     repositories.PaymentRepository
	transactionRepo repositories.TransactionRepository
	db              *sql.DB
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(pr repositories.PaymentRepository, tr repositories.TransactionRepository, db *sql.DB) PaymentService {
	return &paymentService{paymentRepo: pr, transactionRepo: tr, db: db}
}

func (s *paymentService) List(status *string) ([]models.Payment, error) {
	if status != nil && !isValidPaymentStatus(*status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, *status)
	}
	payments, err := s.paymentRepo.List(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) GetSummary() (*models.PaymentsSummary, error) {
	payments, err := s.paymentRepo.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for summary: %w", err)
	}

	summary := &models.PaymentsSummary{}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusPaid:
			summary.TotalPaid += p.Value
		case models.PaymentStatusPending:
			summary.TotalPending += p.Value
		case models.PaymentStatusLate:
			summary.TotalLate += p.Value
		}
	}
	return summary, nil
}

func (s *paymentService) Create(req CreatePaymentRequest) (*models.Payment, error) {
	if utils.IsEmpty(req.SupplierName) {
		return nil, fmt.Errorf("%w: supplier name cannot be empty", ErrValidation)
	}
	if req.Value <= 0 {
		return nil, fmt.Errorf("%w: payment value must be positive", ErrValidation)
	}
	if _, err := time.Parse(utils.ISODateLayout, req.DueDate); err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q, expected YYYY-MM-DD", ErrValidation, req.DueDate)
	}

	payment := models.Payment{
		SupplierName:    req.SupplierName,
		SupplierContact: req.SupplierContact,
		Description:     req.Description,
		Value:           req.Value,
		DueDate:         req.DueDate,
		Status:          models.PaymentStatusPending, // forced regardless of input
		CreatedAt:       time.Now(),
	}

	if _, err := s.paymentRepo.Create(s.db, &payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &payment, nil
}

// Settle marks a pending or late payment as paid and records the matching
// expense transaction. Both writes happen in one database transaction so the
// ledger can never show a settled payment without its expense, or vice versa.
func (s *paymentService) Settle(paymentID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to fetch payment for settlement: %w", err)
	}
	if payment.Status == models.PaymentStatusPaid {
		return nil, ErrPaymentAlreadySettled
	}

	today := utils.FormatISODate(time.Now())

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for payment settlement: %w", err)
	}
	defer tx.Rollback() // no-op if committed

	if err := s.paymentRepo.MarkPaid(tx, paymentID, today); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to mark payment %s as paid: %w", paymentID, err)
	}

	expense := buildSettlementTransaction(payment, today)
	if _, err := s.transactionRepo.Create(tx, expense); err != nil {
		return nil, fmt.Errorf("failed to record settlement expense for payment %s: %w", paymentID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment settlement: %w", err)
	}

	payment.Status = models.PaymentStatusPaid
	payment.PaymentDate = &today
	return payment, nil
}

// buildSettlementTransaction derives the expense ledger entry for a settled
// supplier payment.
func buildSettlementTransaction(payment *models.Payment, paymentDate string) *models.Transaction {
	return &models.Transaction{
		Kind:            models.TransactionKindExpense,
		Description:     fmt.Sprintf("Pagamento: %s - %s", payment.Description, payment.SupplierName),
		Value:           payment.Value,
		Category:        "fornecedor",
		TransactionDate: paymentDate,
		Status:          models.TransactionStatusPaid,
		PaymentID:       &payment.ID,
		CreatedAt:       time.Now(),
	}
}

func isValidPaymentStatus(status string) bool {
	switch status {
	case models.PaymentStatusPaid, models.PaymentStatusPending, models.PaymentStatusLate:
		return true
	default:
		return false
	}
}
