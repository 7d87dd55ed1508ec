package v1

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reelhub/movie-service/internal/core/domain"
	"github.com/reelhub/movie-service/internal/core/domain/domainfakes"
	"github.com/reelhub/movie-service/internal/token"
)

const testSecret = "test-secret"

func newTestAuthService(users domain.UserRepository) (*AuthService, *token.Issuer) {
	issuer := token.NewIssuer(testSecret)
	return NewAuthService(users, issuer, time.Hour, 30*24*time.Hour), issuer
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	users := domainfakes.NewFakeUserRepo()
	svc, issuer := newTestAuthService(users)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email)

	resp, err := svc.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "a@x.com", resp.Email)

	// The minted token must embed the registered account's id.
	userID, err := issuer.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(domainfakes.NewFakeUserRepo())

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "nobody@x.com", Password: "pw"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	users := domainfakes.NewFakeUserRepo()
	svc, _ := newTestAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	users := domainfakes.NewFakeUserRepo()
	svc, _ := newTestAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{Email: "a@x.com", Password: "other"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestTokenTTL_RememberMe(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(domainfakes.NewFakeUserRepo())

	require.Equal(t, time.Hour, svc.TokenTTL(false))
	require.Equal(t, 30*24*time.Hour, svc.TokenTTL(true))
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	users := domainfakes.NewFakeUserRepo()
	svc, _ := newTestAuthService(users)
	ctx := context.Background()

	created, err := svc.Register(ctx, domain.RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, user.Email)

	_, err = svc.GetUser(ctx, 9999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_StorageFailure(t *testing.T) {
	t.Parallel()

	users := domainfakes.NewFakeUserRepo()
	users.FailAll = true
	svc, _ := newTestAuthService(users)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}
