package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/reelhub/movie-service/internal/core/domain"
	logicv1 "github.com/reelhub/movie-service/internal/logic/v1"
	"github.com/reelhub/movie-service/internal/logging"
	"github.com/reelhub/movie-service/middleware"
)

// ListFavorites returns all favorites for the account, newest first.
func (h *Handler) ListFavorites(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.favorites.list", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	userID, _ := middleware.UserID(c)

	favorites, err := h.favorites.List(ctx, userID)
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Listing favorites failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// CheckFavorite reports whether the account has favorited one movie.
func (h *Handler) CheckFavorite(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.favorites.check", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	userID, _ := middleware.UserID(c)

	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	isFavorite, err := h.favorites.Check(ctx, userID, movieID)
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Favorite check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// AddFavorite saves a movie to the account's favorites. Adding a movie
// that is already favorited is reported as success without a new row.
func (h *Handler) AddFavorite(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.favorites.add", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := logging.FromContext(ctx)
	userID, _ := middleware.UserID(c)

	var req domain.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing movieId or title"})
		return
	}

	favorite, created, err := h.favorites.Add(ctx, userID, req)
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, logicv1.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing movieId or title"})
			return
		}
		logger.Error().Err(err).Msg("Adding favorite failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Already favorited"})
		return
	}

	logger.Info().Int64("movie_id", req.MovieID).Msg("Favorite added")
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Favorite added",
		"favorite": favorite,
	})
}

// RemoveFavorite deletes the favorite for a movie. Idempotent.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.favorites.remove", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	userID, _ := middleware.UserID(c)

	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	if err := h.favorites.Remove(ctx, userID, movieID); err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Removing favorite failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

// movieIDParam parses the movieId query parameter, writing the 400
// response itself when the parameter is absent or not numeric.
func movieIDParam(c *gin.Context) (int64, bool) {
	raw := c.Query("movieId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing movieId parameter"})
		return 0, false
	}
	movieID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing movieId parameter"})
		return 0, false
	}
	return movieID, true
}
