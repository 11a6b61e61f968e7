package models

import "time"

// User is a backend operator account. This deployment is single-role, so
// there is no role table; every authenticated user can reach every screen.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username" binding:"required"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
