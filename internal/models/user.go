package models

import "time"

// User roles. The first registered user becomes an admin, everyone else a
// regular user; there is no operation that changes a role afterwards.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`             // "user" or "admin"
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// IsAdmin reports whether the user may perform bulk-destructive operations.
func (u *UserDB) IsAdmin() bool {
	return u.Role == RoleAdmin
}
