package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gasgestor_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AuthRepository defines the interface for authentication-related database operations.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error)
	FindUserByUsername(username string) (*models.User, string, error) // Returns User, HashedPassword, Error
	FindUserByID(userID int64) (*models.User, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

// CreateUser inserts a new user. IsActive defaults to true; timestamps are
// set to the current time.
func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	query := `INSERT INTO users (username, password_hash, full_name, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	currentTime := time.Now()

	var userID int64
	err := executor.QueryRow(
		query,
		user.Username,
		hashedPassword,
		user.FullName, // Can be nil
		true,
		currentTime,
		currentTime,
	).Scan(&userID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return userID, nil
}

// FindUserByUsername retrieves a user by username, returning the user model
// and their hashed password.
func (r *authRepository) FindUserByUsername(username string) (*models.User, string, error) {
	user := &models.User{}
	var hashedPassword string
	query := `SELECT id, username, password_hash, full_name, is_active, created_at, updated_at
	          FROM users WHERE username = $1`

	err := r.db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &hashedPassword, &user.FullName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding user by username %s: %v", ErrDatabaseError, username, err)
	}
	return user, hashedPassword, nil
}

// FindUserByID retrieves a user by their ID.
func (r *authRepository) FindUserByID(userID int64) (*models.User, error) {
	user := &models.User{}
	var passwordHash string
	query := `SELECT id, username, password_hash, full_name, is_active, created_at, updated_at
	          FROM users WHERE id = $1`

	err := r.db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &passwordHash, &user.FullName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by ID %d: %v", ErrDatabaseError, userID, err)
	}
	// PasswordHash is intentionally left unset; this method serves profile
	// reads, not credential checks.
	return user, nil
}
