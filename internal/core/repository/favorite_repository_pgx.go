package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reelhub/movie-service/internal/core/domain"
)

// PgxFavoriteRepository implements domain.FavoriteRepository using pgxpool.
type PgxFavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository creates a new PgxFavoriteRepository.
func NewFavoriteRepository(pool *pgxpool.Pool) *PgxFavoriteRepository {
	return &PgxFavoriteRepository{pool: pool}
}

// ListByUser returns all favorites for the account, newest first.
func (r *PgxFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteRow, error) {
	query := `
		SELECT id, user_id, movie_id, title, poster_path, overview, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.FavoriteRow
	for rows.Next() {
		var row domain.FavoriteRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.MovieID,
			&row.Title, &row.PosterPath, &row.Overview, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

// Exists reports whether the account has favorited the movie.
func (r *PgxFavoriteRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND movie_id = $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, movieID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Create inserts a favorite unless the pair already exists. The unique
// index on (user_id, movie_id) makes concurrent adds safe; the losing
// insert reports created=false instead of failing.
func (r *PgxFavoriteRepository) Create(ctx context.Context, fav domain.FavoriteRow) (*domain.FavoriteRow, bool, error) {
	query := `
		INSERT INTO favorites (user_id, movie_id, title, poster_path, overview)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, movie_id) DO NOTHING
		RETURNING id, user_id, movie_id, title, poster_path, overview, created_at
	`

	var row domain.FavoriteRow
	err := r.pool.QueryRow(ctx, query,
		fav.UserID, fav.MovieID, fav.Title, fav.PosterPath, fav.Overview,
	).Scan(
		&row.ID, &row.UserID, &row.MovieID,
		&row.Title, &row.PosterPath, &row.Overview, &row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: the pair is already favorited.
			return nil, false, nil
		}
		return nil, false, err
	}

	return &row, true, nil
}

// DeleteByMovie removes all favorites matching the pair. Idempotent.
func (r *PgxFavoriteRepository) DeleteByMovie(ctx context.Context, userID, movieID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`
	_, err := r.pool.Exec(ctx, query, userID, movieID)
	return err
}
