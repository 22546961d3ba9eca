package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catkeeper/internal/models"
	"catkeeper/internal/remote"
	"catkeeper/internal/shared"
)

func recvBreeds(t *testing.T, ch <-chan []models.BreedWithImage) []models.BreedWithImage {
	t.Helper()
	select {
	case rows, ok := <-ch:
		require.True(t, ok, "stream closed unexpectedly")
		return rows
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a breeds emission")
		return nil
	}
}

func recvDetails(t *testing.T, ch <-chan models.BreedWithImageAndDetails) models.BreedWithImageAndDetails {
	t.Helper()
	select {
	case row, ok := <-ch:
		require.True(t, ok, "stream closed unexpectedly")
		return row
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a details emission")
		return models.BreedWithImageAndDetails{}
	}
}

// waitFor polls the stream until pred holds or the deadline passes.
// Conflation means intermediate states may be skipped, so tests assert on
// the state they wait for, not on emission counts.
func waitFor[T any](t *testing.T, ch <-chan T, pred func(T) bool) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v, ok := <-ch:
			require.True(t, ok, "stream closed before the expected state arrived")
			if pred(v) {
				return v
			}
		case <-deadline:
			t.Fatal("timed out waiting for the expected state")
		}
	}
}

func TestObserveBreeds_InitialAndOnMutation(t *testing.T) {
	svc, _, src, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src.breeds = []remote.BreedDTO{
		{ID: "abys", Name: "Abyssinian", ReferenceImageID: ptr("img-a")},
	}
	require.Equal(t, InitSuccess, svc.Refresh(ctx).Status)

	ch := svc.ObserveBreeds(ctx)

	rows := recvBreeds(t, ch)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsFavourite)

	_, err := svc.SetFavourite(ctx, "img-a")
	require.NoError(t, err)

	waitFor(t, ch, func(rows []models.BreedWithImage) bool {
		return len(rows) == 1 && rows[0].IsFavourite
	})
}

func TestObserveBreeds_ReEmitsOnRefresh(t *testing.T) {
	svc, _, src, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := svc.ObserveBreeds(ctx)
	rows := recvBreeds(t, ch)
	assert.Empty(t, rows, "empty cache observes as an empty list")

	src.breeds = []remote.BreedDTO{
		{ID: "abys", Name: "Abyssinian", ReferenceImageID: ptr("img-a")},
		{ID: "sphy", Name: "Sphynx", ReferenceImageID: ptr("img-s")},
	}
	require.Equal(t, InitSuccess, svc.Refresh(ctx).Status)

	waitFor(t, ch, func(rows []models.BreedWithImage) bool {
		return len(rows) == 2
	})
}

func TestObserveBreeds_ClosesOnCancel(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())

	ch := svc.ObserveBreeds(ctx)
	recvBreeds(t, ch)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not close after cancel")
		}
	}
}

func TestObserveBreedWithDetails_UnknownBreed(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ObserveBreedWithDetails(context.Background(), "nope")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestObserveBreedWithDetails_NoReferenceImage(t *testing.T) {
	svc, _, src, _ := newTestService(t)
	ctx := context.Background()

	src.breeds = []remote.BreedDTO{
		{ID: "york", Name: "York Chocolate", Temperament: "Playful", Origin: "United States"},
	}
	require.Equal(t, InitSuccess, svc.Refresh(ctx).Status)

	ch, err := svc.ObserveBreedWithDetails(ctx, "york")
	require.NoError(t, err)

	row := recvDetails(t, ch)
	assert.Equal(t, "York Chocolate", row.Breed.Name)
	assert.Nil(t, row.Image)
	assert.False(t, row.IsFavourite)

	_, ok := <-ch
	assert.False(t, ok, "a breed that cannot be favourited emits once and closes")
}

func TestObserveBreedWithDetails_FavouriteToggle(t *testing.T) {
	svc, _, src, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src.breeds = []remote.BreedDTO{
		{ID: "abys", Name: "Abyssinian", Temperament: "Active", LifeSpan: "14 - 15",
			ReferenceImageID: ptr("img-a")},
	}
	require.Equal(t, InitSuccess, svc.Refresh(ctx).Status)

	ch, err := svc.ObserveBreedWithDetails(ctx, "abys")
	require.NoError(t, err)

	row := recvDetails(t, ch)
	assert.False(t, row.IsFavourite)
	require.NotNil(t, row.Details)
	assert.Equal(t, "Active", row.Details.Temperament)
	require.NotNil(t, row.Image)

	_, err = svc.SetFavourite(ctx, "img-a")
	require.NoError(t, err)
	waitFor(t, ch, func(row models.BreedWithImageAndDetails) bool {
		return row.IsFavourite
	})

	_, err = svc.DeleteFavourite(ctx, "img-a")
	require.NoError(t, err)
	waitFor(t, ch, func(row models.BreedWithImageAndDetails) bool {
		return !row.IsFavourite
	})
}
