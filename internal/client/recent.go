package client

import (
	"sync"

	"github.com/reelhub/movie-service/internal/tmdb"
)

// RecentList keeps the most recently viewed movies, newest first.
// Re-viewing a movie moves it to the front rather than duplicating it.
type RecentList struct {
	mu       sync.Mutex
	capacity int
	movies   []tmdb.Movie
}

// NewRecentList creates a list bounded to capacity entries.
func NewRecentList(capacity int) *RecentList {
	if capacity <= 0 {
		capacity = 10
	}
	return &RecentList{capacity: capacity}
}

// Add records a viewed movie at the front, evicting the oldest entry when
// the list is full.
func (r *RecentList) Add(movie tmdb.Movie) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.movies[:0]
	for _, m := range r.movies {
		if m.ID != movie.ID {
			kept = append(kept, m)
		}
	}
	r.movies = append([]tmdb.Movie{movie}, kept...)

	if len(r.movies) > r.capacity {
		r.movies = r.movies[:r.capacity]
	}
}

// Items returns a copy of the list, newest first.
func (r *RecentList) Items() []tmdb.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]tmdb.Movie, len(r.movies))
	copy(out, r.movies)
	return out
}
