package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopular(t *testing.T) {
	t.Parallel()

	var gotPage, gotAuth, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/popular", r.URL.Path)
		gotPage = r.URL.Query().Get("page")
		gotLang = r.URL.Query().Get("language")
		gotAuth = r.Header.Get("Authorization")

		json.NewEncoder(w).Encode(Page{
			Page:         3,
			Results:      []Movie{{ID: 1, Title: "Dune"}},
			TotalPages:   120,
			TotalResults: 2400,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123", srv.Client())

	page, err := c.Popular(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "3", gotPage)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, "en-US", gotLang)
	require.Len(t, page.Results, 1)
	require.Equal(t, "Dune", page.Results[0].Title)
}

func TestPopular_PageClamped(t *testing.T) {
	t.Parallel()

	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(Page{Page: MaxPage, TotalPages: 9000})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", srv.Client())

	page, err := c.Popular(context.Background(), 9001)
	require.NoError(t, err)
	require.Equal(t, "500", gotPage)
	// Reported total pages are capped at the provider's policy limit too.
	require.Equal(t, MaxPage, page.TotalPages)

	_, err = c.Popular(context.Background(), -5)
	require.NoError(t, err)
	require.Equal(t, "1", gotPage)
}

func TestSearch_EmptyResultsIsNotAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/movie", r.URL.Path)
		require.Equal(t, "zzzz no match", r.URL.Query().Get("query"))
		require.Equal(t, "false", r.URL.Query().Get("include_adult"))
		json.NewEncoder(w).Encode(Page{Page: 1, Results: []Movie{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", srv.Client())

	page, err := c.Search(context.Background(), "zzzz no match", 1)
	require.NoError(t, err)
	require.Empty(t, page.Results)
}

func TestDetails_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", srv.Client())

	_, err := c.Details(context.Background(), 424242)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDetails_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", srv.Client())

	_, err := c.Details(context.Background(), 1)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestDetails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/603", r.URL.Path)
		json.NewEncoder(w).Encode(Movie{ID: 603, Title: "The Matrix", Runtime: 136})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", srv.Client())

	movie, err := c.Details(context.Background(), 603)
	require.NoError(t, err)
	require.Equal(t, "The Matrix", movie.Title)
	require.Equal(t, 136, movie.Runtime)
}
