package v1

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/reelhub/movie-service/internal/core/domain"
	"github.com/reelhub/movie-service/internal/logging"
	"github.com/reelhub/movie-service/internal/token"
	"github.com/reelhub/movie-service/middleware"
)

// AuthService implements registration, login, and account lookup.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database or SQL directly.
type AuthService struct {
	users         domain.UserRepository
	issuer        *token.Issuer
	tokenTTL      time.Duration
	rememberMeTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, issuer *token.Issuer, tokenTTL, rememberMeTTL time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		issuer:        issuer,
		tokenTTL:      tokenTTL,
		rememberMeTTL: rememberMeTTL,
	}
}

// TokenTTL returns the session lifetime for the given remember-me choice.
// The web layer uses it to align the cookie Max-Age with the token expiry.
func (s *AuthService) TokenTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return s.rememberMeTTL
	}
	return s.tokenTTL
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password both surface as credential failures.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	row, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user: %w", err)
	}
	if row == nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, fmt.Errorf("authenticate %q: %w", req.Email, ErrUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(req.Password)); err != nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, fmt.Errorf("authenticate %q: %w", req.Email, ErrInvalidCredentials)
	}

	tok, err := s.issuer.Issue(row.ID, s.TokenTTL(req.RememberMe))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// Best-effort, never fails the login.
	if updateErr := s.users.UpdateLastLogin(ctx, row.ID); updateErr != nil {
		logging.FromContext(ctx).Warn().Err(updateErr).Msg("Failed to update last_login")
	}

	span.SetAttributes(
		attribute.Int64("user.id", row.ID),
		attribute.Bool("auth.success", true),
	)

	return &domain.AuthResponse{
		Token:   tok,
		Message: "Login successful",
		Email:   row.Email,
	}, nil
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, fmt.Errorf("register %q: %w", req.Email, ErrEmailTaken)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.users.Create(ctx, req.Email, string(passwordHash))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Bool("registration.success", true),
	)

	return &domain.User{ID: userID, Email: req.Email}, nil
}

// GetUser returns the public account shape for an authenticated id.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.get_user", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	row, err := s.users.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %d: %w", userID, err)
	}
	if row == nil {
		return nil, fmt.Errorf("lookup user %d: %w", userID, ErrUserNotFound)
	}

	return &domain.User{ID: row.ID, Email: row.Email}, nil
}
