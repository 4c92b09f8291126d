package auth

import (
	"time"

	"github.com/google/uuid"
)

// Account is an operator login. Kept separate from the staff roster,
// which lives in the users table.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
