package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gasgestor_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error
)

// InventoryRepository defines the interface for inventory database operations.
type InventoryRepository interface {
	List() ([]models.InventoryItem, error)
	GetByID(itemID string) (*models.InventoryItem, error)
	GetNameByID(itemID string) (string, error)
	Create(executor SQLExecutor, item *models.InventoryItem) (string, error)
	UpdateFullCount(executor SQLExecutor, itemID string, newCount int, updatedAt time.Time) error
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

const inventoryColumns = `id, name, item_type, full_count, empty_count, min_threshold, max_capacity, updated_at`

func (r *inventoryRepository) List() ([]models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY name ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying inventory items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.ItemType, &item.FullCount, &item.EmptyCount,
			&item.MinThreshold, &item.MaxCapacity, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning inventory item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *inventoryRepository) GetByID(itemID string) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	var item models.InventoryItem
	err := r.db.QueryRow(query, itemID).Scan(
		&item.ID, &item.Name, &item.ItemType, &item.FullCount, &item.EmptyCount,
		&item.MinThreshold, &item.MaxCapacity, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory item by ID %s: %v", ErrDatabaseError, itemID, err)
	}
	return &item, nil
}

func (r *inventoryRepository) GetNameByID(itemID string) (string, error) {
	var name string
	err := r.db.QueryRow(`SELECT name FROM inventory_items WHERE id = $1`, itemID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: getting inventory item name for ID %s: %v", ErrDatabaseError, itemID, err)
	}
	return name, nil
}

func (r *inventoryRepository) Create(executor SQLExecutor, item *models.InventoryItem) (string, error) {
	query := `INSERT INTO inventory_items
	            (id, name, item_type, full_count, empty_count, min_threshold, max_capacity, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now()
	}

	_, err := executor.Exec(query,
		item.ID, item.Name, item.ItemType, item.FullCount, item.EmptyCount,
		item.MinThreshold, item.MaxCapacity, item.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return "", fmt.Errorf("%w: creating inventory item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *inventoryRepository) UpdateFullCount(executor SQLExecutor, itemID string, newCount int, updatedAt time.Time) error {
	query := `UPDATE inventory_items SET full_count = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, newCount, updatedAt, itemID)
	if err != nil {
		return fmt.Errorf("%w: updating stock for item ID %s: %v", ErrDatabaseError, itemID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for stock update ID %s: %v", ErrDatabaseError, itemID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
