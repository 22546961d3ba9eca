package cli

import (
	"context"
	"errors"

	"catkeeper/internal/services"
	"catkeeper/internal/shared"
)

func (a *App) Favourite(ctx context.Context, breedID string) error {
	row, err := a.service.GetBreedWithImage(ctx, breedID)
	if errors.Is(err, shared.ErrNotFound) {
		printlnFn("Unknown breed:", breedID)
		return err
	}
	if err != nil {
		a.log.Error(ctx, "reading breed", "breed_id", breedID, "error", err)
		return err
	}
	if row.Breed.ReferenceImageID == nil {
		printlnFn("This breed has no image and cannot be favourited.")
		return nil
	}

	outcome, err := a.service.SetFavourite(ctx, *row.Breed.ReferenceImageID)
	if err != nil {
		a.log.Error(ctx, "favouriting breed", "breed_id", breedID, "error", err)
		return err
	}
	switch outcome {
	case services.OutcomeSuccess:
		printlnFn("Favourited", row.Breed.Name)
	case services.OutcomeQueued:
		printlnFn("Favourited", row.Breed.Name, "(will sync when online)")
	}
	return nil
}

func (a *App) Unfavourite(ctx context.Context, breedID string) error {
	row, err := a.service.GetBreedWithImage(ctx, breedID)
	if errors.Is(err, shared.ErrNotFound) {
		printlnFn("Unknown breed:", breedID)
		return err
	}
	if err != nil {
		a.log.Error(ctx, "reading breed", "breed_id", breedID, "error", err)
		return err
	}
	if row.Breed.ReferenceImageID == nil {
		printlnFn("This breed has no image and cannot be favourited.")
		return nil
	}

	outcome, err := a.service.DeleteFavourite(ctx, *row.Breed.ReferenceImageID)
	switch outcome {
	case services.OutcomeSuccess:
		printlnFn("Removed favourite", row.Breed.Name)
	case services.OutcomeQueued:
		printlnFn("Removed favourite", row.Breed.Name, "(will sync when online)")
	case services.OutcomeNotFound:
		printlnFn(row.Breed.Name, "is not a favourite.")
		return nil
	default:
		a.log.Error(ctx, "removing favourite", "breed_id", breedID, "error", err)
		return err
	}
	return nil
}
