package services

import (
	"context"
	"errors"
	"fmt"

	"catkeeper/internal/logging"
	"catkeeper/internal/models"
	"catkeeper/internal/netx"
	"catkeeper/internal/remote"
	"catkeeper/internal/shared"
	"catkeeper/internal/store"
)

const defaultImageFetchConcurrency = 8

// BreedService is the produced surface of the sync engine: refresh, observe
// streams, point reads and the favourite mutations. One instance serves the
// whole app; concurrent overlapping Refresh calls are the caller's hazard.
type BreedService struct {
	store        *store.Store
	remote       remote.Source
	connectivity netx.Checker
	log          logging.Logger

	imageFetchConcurrency int
}

// Option customizes a BreedService beyond the required collaborators.
type Option func(*BreedService)

// WithImageFetchConcurrency bounds the image fan-out during refresh.
// Values below one keep the default.
func WithImageFetchConcurrency(n int) Option {
	return func(s *BreedService) {
		if n > 0 {
			s.imageFetchConcurrency = n
		}
	}
}

// NewBreedService wires the three collaborators explicitly; there is no
// process-wide singleton.
func NewBreedService(st *store.Store, src remote.Source, conn netx.Checker,
	log logging.Logger, opts ...Option) *BreedService {
	s := &BreedService{
		store:                 st,
		remote:                src,
		connectivity:          conn,
		log:                   log.With("component", "breeds"),
		imageFetchConcurrency: defaultImageFetchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListBreedsWithImages reads the whole cached catalog and joins each breed
// with its image and effective-favourite flag, sorted by breed name.
func (s *BreedService) ListBreedsWithImages(ctx context.Context) ([]models.BreedWithImage, error) {
	breeds, err := s.store.Breeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading breeds: %w", err)
	}
	images, err := s.store.Images(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading images: %w", err)
	}
	favourites, err := s.store.Favourites(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading favourites: %w", err)
	}
	return MergeBreedsWithImages(breeds, images, favourites), nil
}

// GetBreedWithImage reads one breed from the cache and joins its image and
// effective-favourite flag.
func (s *BreedService) GetBreedWithImage(ctx context.Context, breedID string) (models.BreedWithImage, error) {
	breed, err := s.store.BreedByID(ctx, breedID)
	if err != nil {
		return models.BreedWithImage{}, err
	}

	row := models.BreedWithImage{Breed: *breed}

	img, err := s.store.ImageByBreedID(ctx, breedID)
	switch {
	case err == nil:
		row.Image = img
	case !errors.Is(err, shared.ErrNotFound):
		return models.BreedWithImage{}, err
	}

	if breed.ReferenceImageID != nil {
		fav, err := s.store.FavouriteByImageID(ctx, *breed.ReferenceImageID)
		switch {
		case err == nil:
			row.IsFavourite = fav.IsEffectiveFavourite()
		case !errors.Is(err, shared.ErrNotFound):
			return models.BreedWithImage{}, err
		}
	}

	return row, nil
}

// AverageMinLifeSpan reports the mean minimum life span over the cached
// catalog; ok is false when no breed carries a parsed value.
func (s *BreedService) AverageMinLifeSpan(ctx context.Context) (avg float64, ok bool, err error) {
	breeds, err := s.store.Breeds(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("reading breeds: %w", err)
	}
	rows := MergeBreedsWithImages(breeds, nil, nil)
	avg, ok = AverageMinLifeSpan(rows)
	return avg, ok, nil
}
