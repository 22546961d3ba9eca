package services

import (
	"context"
	"errors"

	"catkeeper/internal/models"
	"catkeeper/internal/shared"
)

// SetFavourite marks an image as favourite. Online it goes to the server
// first and the local row records the confirmed state; a server success also
// cancels a pending delete for the same image (the user toggled faster than
// sync). Offline, or when the server call fails, the intent is queued as a
// pending-add row and the outcome is Queued, which callers treat as success.
func (s *BreedService) SetFavourite(ctx context.Context, imageID string) (Outcome, error) {
	if !s.connectivity.IsConnected(ctx) {
		s.log.Debug(ctx, "offline, queueing favourite add", "image_id", imageID)
		return s.queueAdd(ctx, imageID)
	}

	dto, err := s.remote.CreateFavourite(ctx, imageID)
	if err != nil {
		s.log.Warn(ctx, "favourite add failed remotely, queueing", "image_id", imageID, "error", err)
		return s.queueAdd(ctx, imageID)
	}

	serverID := dto.FavouriteID
	confirmed := models.Favourite{
		ImageID:          imageID,
		FavouriteID:      &serverID,
		PendingOperation: models.PendingNone,
	}

	existing, err := s.store.FavouriteByImageID(ctx, imageID)
	switch {
	case err == nil && existing.PendingOperation == models.PendingDelete:
		// The add above re-created the favourite server-side; overwriting
		// the tombstone cancels the queued delete.
		s.log.Debug(ctx, "favourite add cancels pending delete", "image_id", imageID)
	case err != nil && !errors.Is(err, shared.ErrNotFound):
		return OutcomeUnknownError, err
	}

	if err := s.store.PutFavourite(ctx, confirmed); err != nil {
		return OutcomeUnknownError, err
	}
	return OutcomeSuccess, nil
}

func (s *BreedService) queueAdd(ctx context.Context, imageID string) (Outcome, error) {
	err := s.store.PutFavourite(ctx, models.Favourite{
		ImageID:          imageID,
		PendingOperation: models.PendingAdd,
	})
	if err != nil {
		return OutcomeUnknownError, err
	}
	return OutcomeQueued, nil
}

// DeleteFavourite removes a favourite. A row that never reached the server
// (pending add) is cancelled outright. Otherwise the row becomes a delete
// tombstone when the server cannot be told now, and is physically removed
// once the server delete succeeds, or when there was never a server id to
// delete.
func (s *BreedService) DeleteFavourite(ctx context.Context, imageID string) (Outcome, error) {
	existing, err := s.store.FavouriteByImageID(ctx, imageID)
	if errors.Is(err, shared.ErrNotFound) {
		s.log.Debug(ctx, "favourite delete for unknown image", "image_id", imageID)
		return OutcomeNotFound, err
	}
	if err != nil {
		return OutcomeUnknownError, err
	}

	if !s.connectivity.IsConnected(ctx) {
		if existing.PendingOperation == models.PendingAdd {
			// Never reached the server, so deleting the row cancels the add
			// entirely.
			s.log.Debug(ctx, "offline, cancelling queued favourite add", "image_id", imageID)
			if err := s.store.RemoveFavourite(ctx, imageID); err != nil {
				return OutcomeUnknownError, err
			}
			return OutcomeQueued, nil
		}

		if existing.PendingOperation != models.PendingDelete {
			tombstone := *existing
			tombstone.PendingOperation = models.PendingDelete
			s.log.Debug(ctx, "offline, tombstoning favourite", "image_id", imageID)
			if err := s.store.PutFavourite(ctx, tombstone); err != nil {
				return OutcomeUnknownError, err
			}
		}
		return OutcomeQueued, nil
	}

	if existing.FavouriteID != nil && *existing.FavouriteID != "" {
		if err := s.remote.DeleteFavourite(ctx, *existing.FavouriteID); err != nil {
			s.log.Warn(ctx, "favourite delete failed remotely, tombstoning",
				"image_id", imageID, "error", err)
			tombstone := *existing
			tombstone.PendingOperation = models.PendingDelete
			if err := s.store.PutFavourite(ctx, tombstone); err != nil {
				return OutcomeUnknownError, err
			}
			return OutcomeQueued, nil
		}
	}

	if err := s.store.RemoveFavourite(ctx, imageID); err != nil {
		return OutcomeUnknownError, err
	}
	return OutcomeSuccess, nil
}
