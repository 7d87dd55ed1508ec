package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/reelhub/movie-service/internal/core/domain"
)

// ErrUnauthorized indicates the service rejected the session token.
// The API clears the session before returning it, so subscribers have
// already been notified by the time callers see this error.
var ErrUnauthorized = errors.New("unauthorized")

// API performs HTTP calls against the movie service on behalf of one
// session.
type API struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// NewAPI creates an API client. A nil httpClient gets a default with a
// request timeout.
func NewAPI(baseURL string, httpClient *http.Client, session *Session) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{
		baseURL:    baseURL,
		httpClient: httpClient,
		session:    session,
	}
}

// Login authenticates and installs the returned token into the session.
func (a *API) Login(ctx context.Context, email, password string, rememberMe bool) error {
	body := domain.LoginRequest{Email: email, Password: password, RememberMe: rememberMe}

	var resp domain.AuthResponse
	status, err := a.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", body, &resp)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login: unexpected status %d", status)
	}

	a.session.Init(resp.Token, resp.Email)
	return nil
}

// Register creates an account. It does not sign in.
func (a *API) Register(ctx context.Context, email, password string) error {
	body := domain.RegisterRequest{Email: email, Password: password}

	status, err := a.doJSON(ctx, http.MethodPost, "/api/v1/auth/register", body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("register: unexpected status %d", status)
	}
	return nil
}

// ListFavorites returns the account's favorites, newest first.
func (a *API) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	status, err := a.doJSON(ctx, http.MethodGet, "/api/v1/favorite", nil, &favorites)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list favorites: unexpected status %d", status)
	}
	return favorites, nil
}

// CheckFavorite reports whether the movie is in the account's favorites.
func (a *API) CheckFavorite(ctx context.Context, movieID int64) (bool, error) {
	var resp struct {
		IsFavorite bool `json:"isFavorite"`
	}
	path := "/api/v1/favorite/check?" + movieIDQuery(movieID)
	status, err := a.doJSON(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("check favorite: unexpected status %d", status)
	}
	return resp.IsFavorite, nil
}

// AddFavorite saves a movie to the account's favorites. Both the created
// and already-present outcomes are success.
func (a *API) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest) error {
	status, err := a.doJSON(ctx, http.MethodPost, "/api/v1/favorite", req, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("add favorite: unexpected status %d", status)
	}
	return nil
}

// RemoveFavorite deletes a movie from the account's favorites.
func (a *API) RemoveFavorite(ctx context.Context, movieID int64) error {
	path := "/api/v1/favorite?" + movieIDQuery(movieID)
	status, err := a.doJSON(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("remove favorite: unexpected status %d", status)
	}
	return nil
}

// doJSON performs one request with the session token attached. A 401
// response tears down the session and returns ErrUnauthorized.
func (a *API) doJSON(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := a.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		a.session.Clear()
		return resp.StatusCode, ErrUnauthorized
	}

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func movieIDQuery(movieID int64) string {
	params := url.Values{}
	params.Set("movieId", strconv.FormatInt(movieID, 10))
	return params.Encode()
}
