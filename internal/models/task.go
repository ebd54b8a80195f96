package models

import (
	"fmt"
	"time"
)

// Status filter values accepted by the task listing endpoint.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// TaskDB represents a task record in the database
type TaskDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Task title, 1-255 chars
	Completed bool      `json:"completed" db:"completed"`   // Completion flag
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Refreshed on every mutation
}

// ParseStatusFilter validates a raw filter value. An empty value defaults to
// StatusAll, matching the listing endpoint's default.
func ParseStatusFilter(raw string) (string, error) {
	switch raw {
	case "":
		return StatusAll, nil
	case StatusAll, StatusPending, StatusCompleted:
		return raw, nil
	default:
		return "", fmt.Errorf("invalid status filter %q", raw)
	}
}
