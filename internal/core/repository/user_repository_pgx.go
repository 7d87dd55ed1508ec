package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reelhub/movie-service/internal/core/domain"
)

// PgxUserRepository implements domain.UserRepository using pgxpool.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{pool: pool}
}

// GetByEmail returns the account matching the given email.
// Returns (nil, nil) when no account is found.
func (r *PgxUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserRow, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	var row domain.UserRow
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&row.ID, &row.Email, &row.PasswordHash, &row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// GetByID returns the account with the given id.
// Returns (nil, nil) when no account is found.
func (r *PgxUserRepository) GetByID(ctx context.Context, userID int64) (*domain.UserRow, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`

	var row domain.UserRow
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&row.ID, &row.Email, &row.PasswordHash, &row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// ExistsByEmail returns true when an account with the given email exists.
func (r *PgxUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Create inserts a new account and returns the generated id.
func (r *PgxUserRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	query := `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`

	var userID int64
	err := r.pool.QueryRow(ctx, query, email, passwordHash).Scan(&userID)
	if err != nil {
		return 0, err
	}

	return userID, nil
}

// UpdateLastLogin sets the last_login timestamp to now for the account.
func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}
