// Package v1 exposes the HTTP surface for API version 1.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/reelhub/movie-service/internal/core/domain"
	logicv1 "github.com/reelhub/movie-service/internal/logic/v1"
	"github.com/reelhub/movie-service/internal/logging"
	"github.com/reelhub/movie-service/internal/tmdb"
	"github.com/reelhub/movie-service/middleware"
)

// Handler groups HTTP handlers for API v1.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth         *logicv1.AuthService
	favorites    *logicv1.FavoriteService
	movies       *tmdb.Client
	cookieSecure bool
}

// NewHandler creates a new Handler.
func NewHandler(auth *logicv1.AuthService, favorites *logicv1.FavoriteService, movies *tmdb.Client, cookieSecure bool) *Handler {
	return &Handler{
		auth:         auth,
		favorites:    favorites,
		movies:       movies,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes registers all API v1 routes on the given router group.
// guard is the session-token middleware protecting the account-scoped routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/register", h.Register)

	rg.GET("/movies/popular", h.PopularMovies)
	rg.GET("/movies/search", h.SearchMovies)
	rg.GET("/movies/:id", h.MovieDetails)

	authed := rg.Group("", guard)
	authed.GET("/auth/me", h.GetMe)
	authed.GET("/favorite", h.ListFavorites)
	authed.GET("/favorite/check", h.CheckFavorite)
	authed.POST("/favorite", h.AddFavorite)
	authed.DELETE("/favorite", h.RemoveFavorite)
}

// Login handles HTTP request for user login. On success the session token
// is returned in the body and set as an httpOnly cookie whose Max-Age
// matches the token lifetime.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.login", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := logging.FromContext(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	response, err := h.auth.Login(ctx, req)
	if err != nil {
		span.RecordError(err)
		logger.Warn().Err(err).Msg("Login failed")

		switch {
		case errors.Is(err, logicv1.ErrUserNotFound), errors.Is(err, logicv1.ErrInvalidCredentials):
			// Same message both ways: don't reveal account existence.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	maxAge := int(h.auth.TokenTTL(req.RememberMe).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", response.Token, maxAge, "/", "", h.cookieSecure, true)

	logger.Info().Str("email", response.Email).Msg("Login successful")
	c.JSON(http.StatusOK, response)
}

// Register handles HTTP request for account registration.
func (h *Handler) Register(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.register", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := logging.FromContext(ctx)

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.auth.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Registration failed")

		switch {
		case errors.Is(err, logicv1.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	logger.Info().Int64("user_id", user.ID).Msg("Registration successful")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// GetMe returns the authenticated account.
func (h *Handler) GetMe(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.me", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	user, err := h.auth.GetUser(ctx, userID)
	if err != nil {
		span.RecordError(err)

		switch {
		case errors.Is(err, logicv1.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
