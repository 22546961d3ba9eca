package services

import (
	"context"
	"errors"

	"catkeeper/internal/models"
	"catkeeper/internal/shared"
)

// ObserveBreeds streams the merged breed list. The first value is the
// current cache state; afterwards the stream re-emits on every favourites or
// catalog change. Values are conflated for slow consumers. The channel
// closes when ctx is cancelled.
func (s *BreedService) ObserveBreeds(ctx context.Context) <-chan []models.BreedWithImage {
	out := make(chan []models.BreedWithImage, 1)
	favSub := s.store.SubscribeFavourites()
	catSub := s.store.SubscribeCatalog()

	go func() {
		defer close(out)
		defer favSub.Cancel()
		defer catSub.Cancel()

		emit := func() {
			breeds, err := s.store.Breeds(ctx)
			if err != nil {
				s.log.Error(ctx, "observe: reading breeds", "error", err)
				return
			}
			images, err := s.store.Images(ctx)
			if err != nil {
				s.log.Error(ctx, "observe: reading images", "error", err)
				return
			}
			favourites, err := s.store.Favourites(ctx)
			if err != nil {
				s.log.Error(ctx, "observe: reading favourites", "error", err)
				return
			}
			sendConflated(out, MergeBreedsWithImages(breeds, images, favourites))
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-favSub.C:
				if !ok {
					return
				}
				emit()
			case _, ok := <-catSub.C:
				if !ok {
					return
				}
				emit()
			}
		}
	}()

	return out
}

// ObserveBreedWithDetails streams the detail read model for one breed,
// re-emitting whenever that breed's favourite state changes. An unknown
// breed id fails with shared.ErrNotFound. A breed without a reference image
// emits exactly once and closes: it can never be favourited, so there is
// nothing to watch.
func (s *BreedService) ObserveBreedWithDetails(ctx context.Context, breedID string) (<-chan models.BreedWithImageAndDetails, error) {
	breed, err := s.store.BreedByID(ctx, breedID)
	if err != nil {
		return nil, err
	}

	row := models.BreedWithImageAndDetails{Breed: *breed}

	img, err := s.store.ImageByBreedID(ctx, breedID)
	switch {
	case err == nil:
		row.Image = img
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	det, err := s.store.DetailsByBreedID(ctx, breedID)
	switch {
	case err == nil:
		row.Details = det
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	out := make(chan models.BreedWithImageAndDetails, 1)

	if breed.ReferenceImageID == nil {
		out <- row
		close(out)
		return out, nil
	}

	refImageID := *breed.ReferenceImageID
	favSub := s.store.SubscribeFavourites()

	go func() {
		defer close(out)
		defer favSub.Cancel()

		emitFrom := func(favs []models.Favourite) {
			current := row
			current.IsFavourite = false
			for _, f := range favs {
				if f.ImageID == refImageID && f.IsEffectiveFavourite() {
					current.IsFavourite = true
					break
				}
			}
			sendConflated(out, current)
		}

		// Initial state from a direct read; the topic replay may lag it.
		favs, err := s.store.Favourites(ctx)
		if err != nil {
			s.log.Error(ctx, "observe details: reading favourites", "error", err)
			return
		}
		emitFrom(favs)

		for {
			select {
			case <-ctx.Done():
				return
			case snapshot, ok := <-favSub.C:
				if !ok {
					return
				}
				emitFrom(snapshot)
			}
		}
	}()

	return out, nil
}

// sendConflated delivers v without blocking: when the single-slot buffer is
// full the stale value is dropped so the reader always gets the newest one.
func sendConflated[T any](out chan T, v T) {
	select {
	case out <- v:
	default:
		select {
		case <-out:
		default:
		}
		select {
		case out <- v:
		default:
		}
	}
}
