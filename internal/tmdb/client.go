// Package tmdb is a read-only client for The Movie Database v3 API, the
// external movie metadata provider.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// MaxPage is the deepest page the provider serves; requests beyond it are
// clamped rather than rejected.
const MaxPage = 500

// ErrNotFound indicates the provider has no movie with the requested id.
var ErrNotFound = errors.New("movie not found")

// Movie is the provider's movie shape. JSON field names follow the
// provider's snake_case wire format.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count,omitempty"`
	Runtime     int     `json:"runtime,omitempty"`
	Tagline     string  `json:"tagline,omitempty"`
	Genres      []Genre `json:"genres,omitempty"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Page is one page of listing or search results.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Client talks to the metadata provider. Requests are rate limited
// client-side to stay within the provider's quota.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a provider client. A nil httpClient gets a sane
// default with a request timeout.
func NewClient(baseURL, accessToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  httpClient,
		// Provider quota is ~50 req/s; stay well under it.
		limiter: rate.NewLimiter(rate.Limit(20), 40),
	}
}

// Popular returns one page of the popular-movies listing.
func (c *Client) Popular(ctx context.Context, page int) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(clampPage(page)))

	var result Page
	if err := c.get(ctx, "/movie/popular", params, &result); err != nil {
		return nil, fmt.Errorf("fetch popular movies: %w", err)
	}
	capTotalPages(&result)
	return &result, nil
}

// Search returns one page of title-search results. An empty result list is
// a normal response, not an error.
func (c *Client) Search(ctx context.Context, query string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("page", strconv.Itoa(clampPage(page)))

	var result Page
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	capTotalPages(&result)
	return &result, nil
}

// Details returns the full record for one movie.
func (c *Client) Details(ctx context.Context, movieID int64) (*Movie, error) {
	var result Movie
	err := c.get(ctx, "/movie/"+strconv.FormatInt(movieID, 10), url.Values{}, &result)
	if err != nil {
		return nil, fmt.Errorf("fetch movie %d: %w", movieID, err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("language", "en-US")
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

func capTotalPages(p *Page) {
	if p.TotalPages > MaxPage {
		p.TotalPages = MaxPage
	}
}
