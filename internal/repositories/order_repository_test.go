package repositories_test

import (
	"errors"
	"testing"
	"time"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOrderListBuildsFilteredQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "client_name", "client_address", "status", "product_id", "quantity",
		"total_value", "scheduled_time", "delivered_time", "created_at",
	}).AddRow("o1", "Maria Silva", "Rua A, 10", "pendente", "p13", 2, 240.0, nil, nil, time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE status = \$1 AND \(client_name ILIKE \$2 OR client_address ILIKE \$2\) ORDER BY created_at DESC`).
		WithArgs("pendente", "%maria%").
		WillReturnRows(rows)

	status := "pendente"
	search := "maria"
	repo := repositories.NewOrderRepository(db)
	orders, err := repo.List(models.OrderFilters{Status: &status, Search: &search})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(orders) != 1 || orders[0].ClientName != "Maria Silva" {
		t.Errorf("orders = %+v", orders)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := repositories.NewOrderRepository(db)
	if err := repo.UpdateStatus(db, "missing", "entregue", nil); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("UpdateStatus error = %v, want ErrNotFound", err)
	}
}

func TestOrderCountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("pendente", 4).
		AddRow("entregue", 10)
	mock.ExpectQuery("SELECT status, COUNT").WillReturnRows(rows)

	repo := repositories.NewOrderRepository(db)
	counts, err := repo.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	if counts["pendente"] != 4 || counts["entregue"] != 10 {
		t.Errorf("counts = %v", counts)
	}
}
