package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"catkeeper/internal/models"
	"catkeeper/internal/remote"
)

// Refresh runs one full synchronization cycle: push pending favourite
// intents, pull the remote catalog and favourites, reconcile with whatever
// is still pending locally, and persist the result as one transaction.
// Remote data is preferred; any failure on the online path degrades to the
// cached snapshot instead of propagating.
func (s *BreedService) Refresh(ctx context.Context) InitializationResult {
	if !s.connectivity.IsConnected(ctx) {
		s.log.Info(ctx, "no connectivity, checking cached data")
		return s.offlineFallback(ctx)
	}

	if err := s.refreshFromRemote(ctx); err != nil {
		s.log.Warn(ctx, "remote refresh failed, checking cached data", "error", err)
		return s.offlineFallback(ctx)
	}

	s.log.Info(ctx, "catalog refreshed from remote")
	return InitializationResult{Status: InitSuccess}
}

func (s *BreedService) refreshFromRemote(ctx context.Context) error {
	// Push what the user did offline first, so the favourites list we pull
	// next already reflects as much of it as the server accepted.
	pending, err := s.store.PendingFavourites(ctx)
	if err != nil {
		return fmt.Errorf("reading pending favourites: %w", err)
	}
	s.syncPendingFavourites(ctx, pending)

	var breedDTOs []remote.BreedDTO
	var favouriteDTOs []remote.FavouriteDTO

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		breedDTOs, err = s.remote.ListBreeds(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		favouriteDTOs, err = s.remote.ListFavourites(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("fetching catalog: %w", err)
	}

	catalogImages := s.fetchImages(ctx, breedDTOs)

	// Server-confirmed favourites replace local confirmed state wholesale,
	// but an intent that failed to sync above must survive the replace.
	favouritesToStore := make([]models.Favourite, 0, len(favouriteDTOs))
	for _, dto := range favouriteDTOs {
		favouritesToStore = append(favouritesToStore, favouriteFromDTO(dto))
	}
	stillPending, err := s.store.PendingFavourites(ctx)
	if err != nil {
		return fmt.Errorf("re-reading pending favourites: %w", err)
	}
	// Later upserts win, so pending local rows override same-image remote
	// rows, exactly what reconciliation wants.
	favouritesToStore = append(favouritesToStore, stillPending...)

	catalogBreeds := make([]models.Breed, 0, len(breedDTOs))
	catalogDetails := make([]models.BreedDetails, 0, len(breedDTOs))
	for _, dto := range breedDTOs {
		catalogBreeds = append(catalogBreeds, breedFromDTO(dto))
		catalogDetails = append(catalogDetails, detailsFromDTO(dto))
	}

	if err := s.store.ReplaceCatalog(ctx, catalogBreeds, catalogDetails,
		catalogImages, favouritesToStore); err != nil {
		return fmt.Errorf("persisting catalog: %w", err)
	}

	s.log.Debug(ctx, "catalog persisted",
		"breeds", len(catalogBreeds),
		"images", len(catalogImages),
		"favourites", len(favouritesToStore))
	return nil
}

// syncPendingFavourites pushes each pending intent to the server. Strictly
// best-effort: a failed item keeps its pending state and the refresh goes on.
func (s *BreedService) syncPendingFavourites(ctx context.Context, pending []models.Favourite) {
	for _, fav := range pending {
		switch fav.PendingOperation {
		case models.PendingAdd:
			dto, err := s.remote.CreateFavourite(ctx, fav.ImageID)
			if err != nil {
				s.log.Warn(ctx, "failed to sync favourite add, keeping pending state",
					"image_id", fav.ImageID, "error", err)
				continue
			}
			id := dto.FavouriteID
			if err := s.store.PutFavourite(ctx, models.Favourite{
				ImageID:          fav.ImageID,
				FavouriteID:      &id,
				PendingOperation: models.PendingNone,
			}); err != nil {
				s.log.Warn(ctx, "failed to confirm synced favourite",
					"image_id", fav.ImageID, "error", err)
			}

		case models.PendingDelete:
			// A tombstone without a server id has nothing to delete remotely;
			// it stays pending and the reconciliation carries it forward.
			if fav.FavouriteID == nil {
				continue
			}
			if err := s.remote.DeleteFavourite(ctx, *fav.FavouriteID); err != nil {
				s.log.Warn(ctx, "failed to sync favourite delete, keeping pending state",
					"image_id", fav.ImageID, "error", err)
				continue
			}
			if err := s.store.RemoveFavourite(ctx, fav.ImageID); err != nil {
				s.log.Warn(ctx, "failed to drop synced tombstone",
					"image_id", fav.ImageID, "error", err)
			}
		}
	}
}

// fetchImages resolves the reference image of every breed that has one, a
// bounded fan-out joined before returning. A failed image leaves its breed
// imageless; it never fails the batch or cancels the siblings.
func (s *BreedService) fetchImages(ctx context.Context, breedDTOs []remote.BreedDTO) []models.BreedImage {
	var mu sync.Mutex
	var result []models.BreedImage

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.imageFetchConcurrency)

	for _, dto := range breedDTOs {
		if dto.ReferenceImageID == nil {
			continue
		}
		breedID, imageID := dto.ID, *dto.ReferenceImageID
		g.Go(func() error {
			img, err := s.remote.GetImageByID(gctx, imageID)
			if err != nil {
				s.log.Warn(gctx, "failed to fetch breed image",
					"breed_id", breedID, "image_id", imageID, "error", err)
				return nil
			}
			mu.Lock()
			result = append(result, models.BreedImage{
				BreedID: breedID,
				ImageID: imageID,
				URL:     img.URL,
			})
			mu.Unlock()
			return nil
		})
	}
	// Tasks always return nil; Wait is just the join barrier.
	_ = g.Wait()

	return result
}

// offlineFallback serves the cached snapshot when the remote path is
// unavailable.
func (s *BreedService) offlineFallback(ctx context.Context) InitializationResult {
	cachedBreeds, err := s.store.Breeds(ctx)
	if err != nil {
		return InitializationResult{Status: InitError, Message: fmt.Sprintf("reading cached breeds: %v", err)}
	}
	cachedImages, err := s.store.Images(ctx)
	if err != nil {
		return InitializationResult{Status: InitError, Message: fmt.Sprintf("reading cached images: %v", err)}
	}
	cachedFavourites, err := s.store.Favourites(ctx)
	if err != nil {
		return InitializationResult{Status: InitError, Message: fmt.Sprintf("reading cached favourites: %v", err)}
	}

	if len(MergeBreedsWithImages(cachedBreeds, cachedImages, cachedFavourites)) == 0 {
		s.log.Info(ctx, "no cached data available for offline use")
		return InitializationResult{Status: InitError, Message: "Unable to provide offline data"}
	}

	s.log.Info(ctx, "serving cached data", "breeds", len(cachedBreeds))
	return InitializationResult{Status: InitOfflineDataAvailable}
}
