package services_test

import (
	"errors"
	"testing"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/services"
	"gasgestor_backend/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func pendingPayment() *models.Payment {
	return &models.Payment{
		ID:           "payment-1",
		SupplierName: "Distribuidora Gás Sul",
		Description:  "Carga de botijões",
		Value:        850,
		DueDate:      "2026-09-05",
		Status:       models.PaymentStatusPending,
	}
}

func TestCreatePaymentForcesPendingStatus(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := services.NewPaymentService(repo, &fakeTransactionRepo{}, nil)

	payment, err := svc.Create(services.CreatePaymentRequest{
		SupplierName: "Distribuidora Gás Sul",
		Value:        850,
		DueDate:      "2026-09-05",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if payment.Status != models.PaymentStatusPending {
		t.Errorf("Status = %s, want %s", payment.Status, models.PaymentStatusPending)
	}
	if payment.PaymentDate != nil {
		t.Error("new payment must not carry a payment date")
	}
	if len(repo.createdPayments) != 1 {
		t.Fatalf("created %d payments, want 1", len(repo.createdPayments))
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	svc := services.NewPaymentService(&fakePaymentRepo{}, &fakeTransactionRepo{}, nil)

	tests := []struct {
		name string
		req  services.CreatePaymentRequest
	}{
		{"blank supplier", services.CreatePaymentRequest{SupplierName: " ", Value: 100, DueDate: "2026-09-05"}},
		{"zero value", services.CreatePaymentRequest{SupplierName: "Fornecedor", Value: 0, DueDate: "2026-09-05"}},
		{"bad due date", services.CreatePaymentRequest{SupplierName: "Fornecedor", Value: 100, DueDate: "05/09/2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.req); !errors.Is(err, services.ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGetPaymentsSummary(t *testing.T) {
	repo := &fakePaymentRepo{
		listFn: func(status *string) ([]models.Payment, error) {
			if status != nil {
				t.Error("summary must reduce over all payments, not a filtered subset")
			}
			return []models.Payment{
				{Value: 100, Status: models.PaymentStatusPaid},
				{Value: 200, Status: models.PaymentStatusPaid},
				{Value: 300, Status: models.PaymentStatusPending},
				{Value: 50, Status: models.PaymentStatusLate},
			}, nil
		},
	}
	svc := services.NewPaymentService(repo, &fakeTransactionRepo{}, nil)

	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if summary.TotalPaid != 300 || summary.TotalPending != 300 || summary.TotalLate != 50 {
		t.Errorf("summary = %+v, want 300/300/50", summary)
	}
}

func TestListPaymentsRejectsUnknownStatus(t *testing.T) {
	svc := services.NewPaymentService(&fakePaymentRepo{}, &fakeTransactionRepo{}, nil)

	bad := "quitado"
	if _, err := svc.List(&bad); !errors.Is(err, services.ErrValidation) {
		t.Errorf("List() error = %v, want ErrValidation", err)
	}
}

func TestSettleUnknownPayment(t *testing.T) {
	svc := services.NewPaymentService(&fakePaymentRepo{}, &fakeTransactionRepo{}, nil)

	if _, err := svc.Settle("missing"); !errors.Is(err, services.ErrPaymentNotFound) {
		t.Errorf("Settle() error = %v, want ErrPaymentNotFound", err)
	}
}

func TestSettleAlreadyPaid(t *testing.T) {
	repo := &fakePaymentRepo{
		getByIDFn: func(string) (*models.Payment, error) {
			p := pendingPayment()
			p.Status = models.PaymentStatusPaid
			return p, nil
		},
	}
	txRepo := &fakeTransactionRepo{}
	svc := services.NewPaymentService(repo, txRepo, nil)

	if _, err := svc.Settle("payment-1"); !errors.Is(err, services.ErrPaymentAlreadySettled) {
		t.Errorf("Settle() error = %v, want ErrPaymentAlreadySettled", err)
	}
	if len(txRepo.created) != 0 {
		t.Error("settling an already-paid payment must not create an expense")
	}
}

func TestSettleRecordsExpenseAtomically(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	paymentRepo := &fakePaymentRepo{
		getByIDFn: func(string) (*models.Payment, error) { return pendingPayment(), nil },
	}
	txRepo := &fakeTransactionRepo{}
	svc := services.NewPaymentService(paymentRepo, txRepo, db)

	payment, err := svc.Settle("payment-1")
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}

	today := utils.FormatISODate(time.Now())
	if payment.Status != models.PaymentStatusPaid {
		t.Errorf("Status = %s, want %s", payment.Status, models.PaymentStatusPaid)
	}
	if payment.PaymentDate == nil || *payment.PaymentDate != today {
		t.Errorf("PaymentDate = %v, want %s", payment.PaymentDate, today)
	}
	if paymentRepo.markPaidID != "payment-1" || paymentRepo.markPaidDate != today {
		t.Errorf("MarkPaid called with (%s, %s), want (payment-1, %s)", paymentRepo.markPaidID, paymentRepo.markPaidDate, today)
	}

	if len(txRepo.created) != 1 {
		t.Fatalf("created %d transactions, want 1", len(txRepo.created))
	}
	expense := txRepo.created[0]
	if expense.Kind != models.TransactionKindExpense {
		t.Errorf("Kind = %s, want %s", expense.Kind, models.TransactionKindExpense)
	}
	if expense.Value != 850 {
		t.Errorf("Value = %v, want 850", expense.Value)
	}
	if expense.Category != "fornecedor" {
		t.Errorf("Category = %s, want fornecedor", expense.Category)
	}
	if expense.Status != models.TransactionStatusPaid {
		t.Errorf("Status = %s, want %s", expense.Status, models.TransactionStatusPaid)
	}
	if expense.TransactionDate != today {
		t.Errorf("TransactionDate = %s, want %s", expense.TransactionDate, today)
	}
	if expense.PaymentID == nil || *expense.PaymentID != "payment-1" {
		t.Errorf("PaymentID = %v, want payment-1", expense.PaymentID)
	}
	if want := "Pagamento: Carga de botijões - Distribuidora Gás Sul"; expense.Description != want {
		t.Errorf("Description = %q, want %q", expense.Description, want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet db expectations: %v", err)
	}
}

func TestSettleRollsBackOnExpenseFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	paymentRepo := &fakePaymentRepo{
		getByIDFn: func(string) (*models.Payment, error) { return pendingPayment(), nil },
	}
	txRepo := &fakeTransactionRepo{createErr: errors.New("insert failed")}
	svc := services.NewPaymentService(paymentRepo, txRepo, db)

	if _, err := svc.Settle("payment-1"); err == nil {
		t.Fatal("Settle should fail when the expense insert fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet db expectations: %v", err)
	}
}
