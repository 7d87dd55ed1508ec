// Package domainfakes provides in-memory repository implementations for
// tests. They honour the same contracts as the pgx repositories, including
// the unique (user, movie) pair on favorites.
package domainfakes

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/reelhub/movie-service/internal/core/domain"
)

// ErrStorageDown is returned by every method once FailAll is set, to
// exercise storage-failure paths.
var ErrStorageDown = errors.New("storage unavailable")

// FakeUserRepo is an in-memory domain.UserRepository.
type FakeUserRepo struct {
	mu      sync.Mutex
	nextID  int64
	users   map[int64]domain.UserRow
	FailAll bool
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{users: make(map[int64]domain.UserRow)}
}

func (f *FakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.UserRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return nil, ErrStorageDown
	}
	for _, u := range f.users {
		if u.Email == email {
			row := u
			return &row, nil
		}
	}
	return nil, nil
}

func (f *FakeUserRepo) GetByID(_ context.Context, userID int64) (*domain.UserRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return nil, ErrStorageDown
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	row := u
	return &row, nil
}

func (f *FakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return false, ErrStorageDown
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeUserRepo) Create(_ context.Context, email, passwordHash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return 0, ErrStorageDown
	}
	f.nextID++
	f.users[f.nextID] = domain.UserRow{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return f.nextID, nil
}

func (f *FakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return ErrStorageDown
	}
	return nil
}

// FakeFavoriteRepo is an in-memory domain.FavoriteRepository.
type FakeFavoriteRepo struct {
	mu        sync.Mutex
	nextID    int64
	favorites []domain.FavoriteRow
	FailAll   bool
}

func NewFakeFavoriteRepo() *FakeFavoriteRepo {
	return &FakeFavoriteRepo{}
}

func (f *FakeFavoriteRepo) ListByUser(_ context.Context, userID int64) ([]domain.FavoriteRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return nil, ErrStorageDown
	}
	// Newest first, matching the pgx implementation's ORDER BY id DESC.
	var out []domain.FavoriteRow
	for i := len(f.favorites) - 1; i >= 0; i-- {
		if f.favorites[i].UserID == userID {
			out = append(out, f.favorites[i])
		}
	}
	return out, nil
}

func (f *FakeFavoriteRepo) Exists(_ context.Context, userID, movieID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return false, ErrStorageDown
	}
	return f.find(userID, movieID) >= 0, nil
}

func (f *FakeFavoriteRepo) Create(_ context.Context, fav domain.FavoriteRow) (*domain.FavoriteRow, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return nil, false, ErrStorageDown
	}
	if f.find(fav.UserID, fav.MovieID) >= 0 {
		return nil, false, nil
	}
	f.nextID++
	fav.ID = f.nextID
	fav.CreatedAt = time.Now()
	f.favorites = append(f.favorites, fav)
	row := fav
	return &row, true, nil
}

func (f *FakeFavoriteRepo) DeleteByMovie(_ context.Context, userID, movieID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailAll {
		return ErrStorageDown
	}
	kept := f.favorites[:0]
	for _, row := range f.favorites {
		if !(row.UserID == userID && row.MovieID == movieID) {
			kept = append(kept, row)
		}
	}
	f.favorites = kept
	return nil
}

// Count returns the number of stored rows, for duplicate assertions.
func (f *FakeFavoriteRepo) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.favorites)
}

func (f *FakeFavoriteRepo) find(userID, movieID int64) int {
	for i, row := range f.favorites {
		if row.UserID == userID && row.MovieID == movieID {
			return i
		}
	}
	return -1
}
