package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catkeeper/internal/models"
	"catkeeper/internal/shared"

	_ "modernc.org/sqlite"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func ptr[T any](v T) *T { return &v }

func waitFavourites(t *testing.T, ch <-chan []models.Favourite) []models.Favourite {
	t.Helper()
	select {
	case favs := <-ch:
		return favs
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for favourites snapshot")
		panic("unreachable")
	}
}

func TestOpen_MigratesSchema(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	bs, err := s.Breeds(ctx)
	require.NoError(t, err)
	assert.Empty(t, bs)

	favs, err := s.Favourites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestReplaceCatalog_WritesAllTablesAndSwapsFavourites(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	// favourite that the reconciliation decided to drop
	require.NoError(t, s.PutFavourite(ctx, models.Favourite{
		ImageID: "stale", FavouriteID: ptr("9"), PendingOperation: models.PendingNone,
	}))

	err := s.ReplaceCatalog(ctx,
		[]models.Breed{{ID: "abys", Name: "Abyssinian", ReferenceImageID: ptr("img-1")}},
		[]models.BreedDetails{{BreedID: "abys", Description: "d", Temperament: "t", Origin: "o"}},
		[]models.BreedImage{{BreedID: "abys", ImageID: "img-1", URL: "https://cdn/1.jpg"}},
		[]models.Favourite{{ImageID: "img-1", FavouriteID: ptr("232"), PendingOperation: models.PendingNone}},
	)
	require.NoError(t, err)

	bs, err := s.Breeds(ctx)
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, "Abyssinian", bs[0].Name)

	d, err := s.DetailsByBreedID(ctx, "abys")
	require.NoError(t, err)
	assert.Equal(t, "d", d.Description)

	img, err := s.ImageByBreedID(ctx, "abys")
	require.NoError(t, err)
	assert.Equal(t, "img-1", img.ImageID)

	favs, err := s.Favourites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "img-1", favs[0].ImageID)

	_, err = s.FavouriteByImageID(ctx, "stale")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestPutFavourite_PublishesSnapshot(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	sub := s.SubscribeFavourites()
	defer sub.Cancel()

	require.NoError(t, s.PutFavourite(ctx, models.Favourite{
		ImageID: "img-1", PendingOperation: models.PendingAdd,
	}))

	favs := waitFavourites(t, sub.C)
	require.Len(t, favs, 1)
	assert.Equal(t, models.PendingAdd, favs[0].PendingOperation)
}

func TestSubscribeFavourites_LateSubscriberGetsReplay(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutFavourite(ctx, models.Favourite{
		ImageID: "img-1", PendingOperation: models.PendingAdd,
	}))

	sub := s.SubscribeFavourites()
	defer sub.Cancel()

	favs := waitFavourites(t, sub.C)
	require.Len(t, favs, 1)
	assert.Equal(t, "img-1", favs[0].ImageID)
}

func TestRemoveFavourite_PublishesEmptySnapshot(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutFavourite(ctx, models.Favourite{
		ImageID: "img-1", PendingOperation: models.PendingAdd,
	}))

	sub := s.SubscribeFavourites()
	defer sub.Cancel()
	_ = waitFavourites(t, sub.C) // replayed current state

	require.NoError(t, s.RemoveFavourite(ctx, "img-1"))
	favs := waitFavourites(t, sub.C)
	assert.Empty(t, favs)
}

func TestReplaceCatalog_TicksCatalogTopic(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	sub := s.SubscribeCatalog()
	defer sub.Cancel()

	require.NoError(t, s.ReplaceCatalog(ctx, nil, nil, nil, nil))

	select {
	case <-sub.C:
	case <-time.After(time.Second):
		t.Fatal("expected a catalog change tick")
	}
}
