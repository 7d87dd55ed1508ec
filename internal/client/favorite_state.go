package client

import (
	"context"
	"sync"

	"github.com/reelhub/movie-service/internal/core/domain"
)

// Status is the displayed favorite state for one movie.
type Status int

const (
	StatusUnknown Status = iota
	StatusChecking
	StatusFavorited
	StatusNotFavorited
)

// Phase qualifies the status: Confirmed matches the server, Pending is an
// optimistic flip still in flight, RolledBack means the last toggle failed
// and the displayed state was reverted.
type Phase int

const (
	PhaseConfirmed Phase = iota
	PhasePending
	PhaseRolledBack
)

// FavoriteState tracks one movie's favorite status against the service.
// Toggles are optimistic: the displayed state flips before the request and
// reverts on failure. One attempt per toggle, no retry.
type FavoriteState struct {
	mu      sync.Mutex
	api     *API
	movie   domain.AddFavoriteRequest
	status  Status
	phase   Phase
	lastErr error
}

// NewFavoriteState creates the state machine for one movie. The movie
// metadata is what an Add sends to the service.
func NewFavoriteState(api *API, movie domain.AddFavoriteRequest) *FavoriteState {
	return &FavoriteState{
		api:    api,
		movie:  movie,
		status: StatusUnknown,
	}
}

// Refresh resolves Unknown by asking the service — but only when a session
// exists; signed-out viewers settle on NotFavorited without a request.
func (f *FavoriteState) Refresh(ctx context.Context) error {
	f.mu.Lock()
	if !f.api.session.Active() {
		f.status = StatusNotFavorited
		f.phase = PhaseConfirmed
		f.mu.Unlock()
		return nil
	}
	f.status = StatusChecking
	f.mu.Unlock()

	isFavorite, err := f.api.CheckFavorite(ctx, f.movie.MovieID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusUnknown
		f.lastErr = err
		return err
	}
	if isFavorite {
		f.status = StatusFavorited
	} else {
		f.status = StatusNotFavorited
	}
	f.phase = PhaseConfirmed
	f.lastErr = nil
	return nil
}

// Toggle flips the favorite optimistically and issues the matching Add or
// Remove. On failure the previous state is restored and the error kept for
// display. A 401 already tore down the session by the time this returns.
func (f *FavoriteState) Toggle(ctx context.Context) error {
	f.mu.Lock()
	prev := f.status
	if prev != StatusFavorited && prev != StatusNotFavorited {
		f.mu.Unlock()
		return f.Refresh(ctx)
	}

	adding := prev == StatusNotFavorited
	if adding {
		f.status = StatusFavorited
	} else {
		f.status = StatusNotFavorited
	}
	f.phase = PhasePending
	f.mu.Unlock()

	var err error
	if adding {
		err = f.api.AddFavorite(ctx, f.movie)
	} else {
		err = f.api.RemoveFavorite(ctx, f.movie.MovieID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = prev
		f.phase = PhaseRolledBack
		f.lastErr = err
		return err
	}
	f.phase = PhaseConfirmed
	f.lastErr = nil
	return nil
}

// Status returns the displayed state.
func (f *FavoriteState) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Phase returns how trustworthy the displayed state is.
func (f *FavoriteState) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Err returns the error from the last failed operation, nil after success.
func (f *FavoriteState) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}
