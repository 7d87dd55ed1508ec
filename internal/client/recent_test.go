package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reelhub/movie-service/internal/tmdb"
)

func TestRecentList_NewestFirst(t *testing.T) {
	t.Parallel()

	r := NewRecentList(10)
	r.Add(tmdb.Movie{ID: 1, Title: "First"})
	r.Add(tmdb.Movie{ID: 2, Title: "Second"})

	items := r.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Second", items[0].Title)
	require.Equal(t, "First", items[1].Title)
}

func TestRecentList_DedupeMovesToFront(t *testing.T) {
	t.Parallel()

	r := NewRecentList(10)
	r.Add(tmdb.Movie{ID: 1, Title: "First"})
	r.Add(tmdb.Movie{ID: 2, Title: "Second"})
	r.Add(tmdb.Movie{ID: 1, Title: "First"})

	items := r.Items()
	require.Len(t, items, 2)
	require.Equal(t, int64(1), items[0].ID)
}

func TestRecentList_Capacity(t *testing.T) {
	t.Parallel()

	r := NewRecentList(3)
	for i := int64(1); i <= 5; i++ {
		r.Add(tmdb.Movie{ID: i})
	}

	items := r.Items()
	require.Len(t, items, 3)
	// Oldest entries were evicted.
	require.Equal(t, int64(5), items[0].ID)
	require.Equal(t, int64(3), items[2].ID)
}
