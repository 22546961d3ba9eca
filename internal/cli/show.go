package cli

import (
	"context"
	"errors"
	"fmt"

	"catkeeper/internal/shared"
)

// Show prints the detail view of one breed: the first value of the detail
// stream, after which the subscription is dropped.
func (a *App) Show(ctx context.Context, breedID string) error {
	obsCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, err := a.service.ObserveBreedWithDetails(obsCtx, breedID)
	if errors.Is(err, shared.ErrNotFound) {
		printlnFn("Unknown breed:", breedID)
		return err
	}
	if err != nil {
		a.log.Error(ctx, "reading breed details", "breed_id", breedID, "error", err)
		return err
	}

	row, ok := <-ch
	if !ok {
		return nil
	}

	printlnFn(fmt.Sprintf("%s (%s)", row.Breed.Name, row.Breed.ID))
	if row.Breed.MinLifeSpan != nil && row.Breed.MaxLifeSpan != nil {
		printlnFn(fmt.Sprintf("Life span: %d-%d years", *row.Breed.MinLifeSpan, *row.Breed.MaxLifeSpan))
	}
	if row.Details != nil {
		if row.Details.Origin != "" {
			printlnFn("Origin:", row.Details.Origin)
		}
		if row.Details.Temperament != "" {
			printlnFn("Temperament:", row.Details.Temperament)
		}
		if row.Details.Description != "" {
			printlnFn(row.Details.Description)
		}
	}
	if row.Image != nil {
		printlnFn("Image:", row.Image.URL)
	}
	if row.IsFavourite {
		printlnFn("This breed is a favourite.")
	}
	return nil
}
