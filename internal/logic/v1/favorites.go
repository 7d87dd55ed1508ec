package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/reelhub/movie-service/internal/core/domain"
	"github.com/reelhub/movie-service/middleware"
)

// FavoriteService implements the favorites collection rules. All callers
// are already authenticated; userID comes from the verified session token.
type FavoriteService struct {
	favorites domain.FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favorites domain.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites}
}

// List returns the account's favorites, newest first. The result is never
// nil so the web layer renders an empty JSON array rather than null.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	ctx, span := middleware.StartSpan(ctx, "favorites.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	rows, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	favorites := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, domain.FavoriteFromRow(row))
	}

	span.SetAttributes(attribute.Int("favorites.count", len(favorites)))
	return favorites, nil
}

// Check reports whether the account has favorited the movie.
func (s *FavoriteService) Check(ctx context.Context, userID, movieID int64) (bool, error) {
	ctx, span := middleware.StartSpan(ctx, "favorites.check", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", userID),
		attribute.Int64("movie.id", movieID),
	))
	defer span.End()

	exists, err := s.favorites.Exists(ctx, userID, movieID)
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("check favorite: %w", err)
	}

	return exists, nil
}

// Add saves a movie to the account's favorites. Adding a movie that is
// already favorited is a no-op success: the returned favorite is nil and
// created is false. The store-level unique index makes this safe under
// concurrent adds for the same pair.
func (s *FavoriteService) Add(ctx context.Context, userID int64, req domain.AddFavoriteRequest) (*domain.Favorite, bool, error) {
	ctx, span := middleware.StartSpan(ctx, "favorites.add", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", userID),
		attribute.Int64("movie.id", req.MovieID),
	))
	defer span.End()

	if req.MovieID == 0 || req.Title == "" {
		return nil, false, fmt.Errorf("add favorite: movieId and title: %w", ErrMissingField)
	}

	row, created, err := s.favorites.Create(ctx, domain.FavoriteRow{
		UserID:     userID,
		MovieID:    req.MovieID,
		Title:      req.Title,
		PosterPath: req.PosterPath,
		Overview:   req.Overview,
	})
	if err != nil {
		span.RecordError(err)
		return nil, false, fmt.Errorf("insert favorite: %w", err)
	}

	span.SetAttributes(attribute.Bool("favorites.created", created))
	if !created {
		return nil, false, nil
	}

	fav := domain.FavoriteFromRow(*row)
	return &fav, true, nil
}

// Remove deletes the favorite for the pair. Removing a movie that was
// never favorited succeeds without error.
func (s *FavoriteService) Remove(ctx context.Context, userID, movieID int64) error {
	ctx, span := middleware.StartSpan(ctx, "favorites.remove", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", userID),
		attribute.Int64("movie.id", movieID),
	))
	defer span.End()

	if err := s.favorites.DeleteByMovie(ctx, userID, movieID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}
