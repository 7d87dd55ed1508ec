package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/reelhub/movie-service/internal/logging"
	"github.com/reelhub/movie-service/internal/tmdb"
	"github.com/reelhub/movie-service/middleware"
)

// Movie browse endpoints proxy the metadata provider. They are public:
// browsing never required a session in the product, only favoriting does.

// PopularMovies returns one page of the popular listing.
func (h *Handler) PopularMovies(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.movies.popular", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	page := pageParam(c)

	result, err := h.movies.Popular(ctx, page)
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Popular movies fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Movie data unavailable"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchMovies returns one page of title-search results. An empty result
// list is a normal 200 response.
func (h *Handler) SearchMovies(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.movies.search", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter"})
		return
	}

	result, err := h.movies.Search(ctx, query, pageParam(c))
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Movie search failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Movie data unavailable"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// MovieDetails returns the full provider record for one movie.
func (h *Handler) MovieDetails(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.movies.details", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	movie, err := h.movies.Details(ctx, movieID)
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, tmdb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		logging.FromContext(ctx).Error().Err(err).Msg("Movie details fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Movie data unavailable"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
