package domain

import (
	"context"
	"time"
)

// UserRow represents an account record returned from the database.
// It includes the password hash so the Logic layer can verify credentials.
type UserRow struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines the data-access contract for account operations.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx directly.
type UserRepository interface {
	// GetByEmail returns the account matching the given email.
	// Returns (nil, nil) when no account is found.
	GetByEmail(ctx context.Context, email string) (*UserRow, error)

	// GetByID returns the account with the given id.
	// Returns (nil, nil) when no account is found.
	GetByID(ctx context.Context, userID int64) (*UserRow, error)

	// ExistsByEmail returns true when an account with the given email
	// already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new account and returns the generated id.
	Create(ctx context.Context, email, passwordHash string) (int64, error)

	// UpdateLastLogin sets the last_login timestamp to now for the account.
	UpdateLastLogin(ctx context.Context, userID int64) error
}
