package domain

import (
	"context"
	"time"
)

// FavoriteRow represents a saved movie reference owned by an account.
// PosterPath and Overview are display metadata cached from the metadata
// provider at the time the favorite was added.
type FavoriteRow struct {
	ID         int64
	UserID     int64
	MovieID    int64
	Title      string
	PosterPath *string
	Overview   *string
	CreatedAt  time.Time
}

// FavoriteRepository defines the data-access contract for favorites.
// At most one row exists per (user, movie) pair; the store enforces this
// with a unique index, so concurrent adds cannot create duplicates.
type FavoriteRepository interface {
	// ListByUser returns all favorites for the account, newest first.
	ListByUser(ctx context.Context, userID int64) ([]FavoriteRow, error)

	// Exists reports whether the account has favorited the movie.
	Exists(ctx context.Context, userID, movieID int64) (bool, error)

	// Create inserts a favorite unless the pair already exists.
	// Returns the row and created=true on insert, (nil, false) when the
	// pair was already present.
	Create(ctx context.Context, fav FavoriteRow) (*FavoriteRow, bool, error)

	// DeleteByMovie removes all favorites matching the pair.
	// Deleting a pair that does not exist is not an error.
	DeleteByMovie(ctx context.Context, userID, movieID int64) error
}
