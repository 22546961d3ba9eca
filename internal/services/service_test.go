package services

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"catkeeper/internal/logging"
	"catkeeper/internal/models"
	"catkeeper/internal/remote"
	"catkeeper/internal/store"

	_ "modernc.org/sqlite"
)

// fakeRemote is an in-memory remote.Source recording mutation calls.
type fakeRemote struct {
	mu sync.Mutex

	breeds        []remote.BreedDTO
	breedsErr     error
	favourites    []remote.FavouriteDTO
	favouritesErr error

	images    map[string]remote.ImageDTO
	imageErrs map[string]error

	nextFavouriteID int
	createErr       error
	createCalls     []string
	deleteErr       error
	deleteCalls     []string
}

func (f *fakeRemote) ListBreeds(ctx context.Context) ([]remote.BreedDTO, error) {
	if f.breedsErr != nil {
		return nil, f.breedsErr
	}
	return f.breeds, nil
}

func (f *fakeRemote) ListFavourites(ctx context.Context) ([]remote.FavouriteDTO, error) {
	if f.favouritesErr != nil {
		return nil, f.favouritesErr
	}
	return f.favourites, nil
}

func (f *fakeRemote) GetImageByID(ctx context.Context, imageID string) (remote.ImageDTO, error) {
	if err, ok := f.imageErrs[imageID]; ok {
		return remote.ImageDTO{}, err
	}
	if img, ok := f.images[imageID]; ok {
		return img, nil
	}
	return remote.ImageDTO{ID: imageID, URL: "https://cdn/" + imageID + ".jpg"}, nil
}

func (f *fakeRemote) CreateFavourite(ctx context.Context, imageID string) (remote.FavouriteDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls = append(f.createCalls, imageID)
	if f.createErr != nil {
		return remote.FavouriteDTO{}, f.createErr
	}
	f.nextFavouriteID++
	return remote.FavouriteDTO{
		FavouriteID: strconv.Itoa(f.nextFavouriteID),
		ImageID:     imageID,
	}, nil
}

func (f *fakeRemote) DeleteFavourite(ctx context.Context, favouriteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, favouriteID)
	return f.deleteErr
}

// fakeChecker is a switchable netx.Checker.
type fakeChecker struct {
	online bool
}

func (c *fakeChecker) IsConnected(ctx context.Context) bool { return c.online }

func newTestService(t *testing.T) (*BreedService, *store.Store, *fakeRemote, *fakeChecker) {
	t.Helper()

	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	src := &fakeRemote{}
	conn := &fakeChecker{online: true}
	svc := NewBreedService(st, src, conn, logging.NewNop())
	return svc, st, src, conn
}

func mustFavourite(t *testing.T, st *store.Store, imageID string) models.Favourite {
	t.Helper()
	f, err := st.FavouriteByImageID(context.Background(), imageID)
	require.NoError(t, err)
	return *f
}
