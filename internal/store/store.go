// Package store bootstraps the local sqlite cache and exposes it as one
// facade: typed reads, notifying writes, and change topics with last-value
// replay for the observe streams.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"catkeeper/internal/dbx"
	"catkeeper/internal/models"
	"catkeeper/internal/repositories/breeds"
	"catkeeper/internal/repositories/details"
	"catkeeper/internal/repositories/favourites"
	"catkeeper/internal/repositories/images"
	"catkeeper/internal/store/migrations"
	"catkeeper/internal/watch"
)

// Store is the local cache. All writes go through it so that every mutation
// also feeds the subscription topics; sqlite serializes the writes
// themselves.
type Store struct {
	db *sql.DB

	breedRepo  breeds.Repository
	imageRepo  images.Repository
	detailRepo details.Repository
	favRepo    favourites.Repository

	favouriteChanges *watch.Topic[[]models.Favourite]
	catalogChanges   *watch.Topic[struct{}]
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the cache database at dsn, runs migrations
// and wires the repositories. The caller owns Close.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate cache db: %w", err)
	}

	return New(db), nil
}

// New wraps an already-migrated database handle. Tests use this with the
// in-memory driver.
func New(db *sql.DB) *Store {
	return &Store{
		db:               db,
		breedRepo:        breeds.NewSQLiteRepository(db),
		imageRepo:        images.NewSQLiteRepository(db),
		detailRepo:       details.NewSQLiteRepository(db),
		favRepo:          favourites.NewSQLiteRepository(db),
		favouriteChanges: watch.NewTopic[[]models.Favourite](),
		catalogChanges:   watch.NewTopic[struct{}](),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Reads.

func (s *Store) Breeds(ctx context.Context) ([]models.Breed, error) {
	return s.breedRepo.GetAll(ctx)
}

func (s *Store) BreedByID(ctx context.Context, breedID string) (*models.Breed, error) {
	return s.breedRepo.GetByID(ctx, breedID)
}

func (s *Store) Images(ctx context.Context) ([]models.BreedImage, error) {
	return s.imageRepo.GetAll(ctx)
}

func (s *Store) ImageByBreedID(ctx context.Context, breedID string) (*models.BreedImage, error) {
	return s.imageRepo.GetByBreedID(ctx, breedID)
}

func (s *Store) DetailsByBreedID(ctx context.Context, breedID string) (*models.BreedDetails, error) {
	return s.detailRepo.GetByBreedID(ctx, breedID)
}

func (s *Store) Favourites(ctx context.Context) ([]models.Favourite, error) {
	return s.favRepo.GetAll(ctx)
}

func (s *Store) PendingFavourites(ctx context.Context) ([]models.Favourite, error) {
	return s.favRepo.GetPending(ctx)
}

func (s *Store) FavouriteByImageID(ctx context.Context, imageID string) (*models.Favourite, error) {
	return s.favRepo.GetByImageID(ctx, imageID)
}

// Writes. Each publishes the affected topics after the rows are durable.

// ReplaceCatalog applies a refresh result as one transaction: upsert breeds,
// details and images, then swap the favourites table for the reconciled set.
func (s *Store) ReplaceCatalog(ctx context.Context, bs []models.Breed, ds []models.BreedDetails,
	imgs []models.BreedImage, favs []models.Favourite) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := breeds.NewSQLiteRepository(tx).UpsertAll(ctx, bs); err != nil {
			return err
		}
		if err := details.NewSQLiteRepository(tx).UpsertAll(ctx, ds); err != nil {
			return err
		}
		if err := images.NewSQLiteRepository(tx).UpsertAll(ctx, imgs); err != nil {
			return err
		}
		favRepo := favourites.NewSQLiteRepository(tx)
		if err := favRepo.DeleteAll(ctx); err != nil {
			return err
		}
		return favRepo.UpsertAll(ctx, favs)
	})
	if err != nil {
		return err
	}

	s.catalogChanges.Publish(struct{}{})
	s.publishFavourites(ctx)
	return nil
}

// PutFavourite upserts one favourite row and notifies subscribers.
func (s *Store) PutFavourite(ctx context.Context, f models.Favourite) error {
	if err := s.favRepo.Upsert(ctx, f); err != nil {
		return err
	}
	s.publishFavourites(ctx)
	return nil
}

// RemoveFavourite deletes one favourite row and notifies subscribers.
func (s *Store) RemoveFavourite(ctx context.Context, imageID string) error {
	if err := s.favRepo.Delete(ctx, imageID); err != nil {
		return err
	}
	s.publishFavourites(ctx)
	return nil
}

func (s *Store) publishFavourites(ctx context.Context) {
	favs, err := s.favRepo.GetAll(ctx)
	if err != nil {
		// Subscribers work from snapshots; a failed re-read just skips one
		// notification and the next successful write publishes fresh state.
		return
	}
	s.favouriteChanges.Publish(favs)
}

// Subscriptions.

// SubscribeFavourites streams full favourites snapshots, replaying the
// latest one to new subscribers.
func (s *Store) SubscribeFavourites() *watch.Subscription[[]models.Favourite] {
	return s.favouriteChanges.Subscribe()
}

// SubscribeCatalog ticks whenever breeds, details or images were rewritten.
func (s *Store) SubscribeCatalog() *watch.Subscription[struct{}] {
	return s.catalogChanges.Subscribe()
}
