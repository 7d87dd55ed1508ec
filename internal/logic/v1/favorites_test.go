package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reelhub/movie-service/internal/core/domain"
	"github.com/reelhub/movie-service/internal/core/domain/domainfakes"
)

func strptr(s string) *string { return &s }

func TestAdd_Idempotent(t *testing.T) {
	t.Parallel()

	repo := domainfakes.NewFakeFavoriteRepo()
	svc := NewFavoriteService(repo)
	ctx := context.Background()

	req := domain.AddFavoriteRequest{MovieID: 42, Title: "Dune", PosterPath: strptr("/dune.jpg")}

	fav, created, err := svc.Add(ctx, 1, req)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, int64(42), fav.MovieID)

	// Second add: success, no new row.
	fav, created, err = svc.Add(ctx, 1, req)
	require.NoError(t, err)
	require.False(t, created)
	require.Nil(t, fav)
	require.Equal(t, 1, repo.Count())
}

func TestAdd_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(domainfakes.NewFakeFavoriteRepo())
	ctx := context.Background()

	_, _, err := svc.Add(ctx, 1, domain.AddFavoriteRequest{Title: "Dune"})
	require.ErrorIs(t, err, ErrMissingField)

	_, _, err = svc.Add(ctx, 1, domain.AddFavoriteRequest{MovieID: 42})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestRemove_Idempotent(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(domainfakes.NewFakeFavoriteRepo())

	// Removing a pair that never existed succeeds.
	require.NoError(t, svc.Remove(context.Background(), 1, 999))
}

func TestCheck_ReadAfterWrite(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(domainfakes.NewFakeFavoriteRepo())
	ctx := context.Background()

	exists, err := svc.Check(ctx, 1, 42)
	require.NoError(t, err)
	require.False(t, exists)

	_, _, err = svc.Add(ctx, 1, domain.AddFavoriteRequest{MovieID: 42, Title: "Dune"})
	require.NoError(t, err)

	exists, err = svc.Check(ctx, 1, 42)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, svc.Remove(ctx, 1, 42))

	exists, err = svc.Check(ctx, 1, 42)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestList_NewestFirstAndScopedToUser(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(domainfakes.NewFakeFavoriteRepo())
	ctx := context.Background()

	for i, title := range []string{"First", "Second", "Third"} {
		_, _, err := svc.Add(ctx, 1, domain.AddFavoriteRequest{MovieID: int64(i + 1), Title: title})
		require.NoError(t, err)
	}
	_, _, err := svc.Add(ctx, 2, domain.AddFavoriteRequest{MovieID: 99, Title: "Other user's"})
	require.NoError(t, err)

	favorites, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, favorites, 3)
	require.Equal(t, "Third", favorites[0].Title)
	require.Equal(t, "First", favorites[2].Title)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(domainfakes.NewFakeFavoriteRepo())

	favorites, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, favorites)
	require.Empty(t, favorites)
}
