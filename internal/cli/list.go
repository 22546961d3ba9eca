package cli

import (
	"context"
	"fmt"

	"catkeeper/internal/models"
)

func formatBreedRow(row models.BreedWithImage) string {
	marker := " "
	if row.IsFavourite {
		marker = "*"
	}
	lifeSpan := ""
	if row.Breed.MinLifeSpan != nil && row.Breed.MaxLifeSpan != nil {
		lifeSpan = fmt.Sprintf("%d-%d years", *row.Breed.MinLifeSpan, *row.Breed.MaxLifeSpan)
	}
	return fmt.Sprintf("%s %-6s %-25s %s", marker, row.Breed.ID, row.Breed.Name, lifeSpan)
}

func (a *App) List(ctx context.Context) error {
	rows, err := a.service.ListBreedsWithImages(ctx)
	if err != nil {
		a.log.Error(ctx, "listing breeds", "error", err)
		return err
	}
	if len(rows) == 0 {
		printlnFn("The catalog is empty; run 'sync' while online.")
		return nil
	}
	for _, row := range rows {
		printlnFn(formatBreedRow(row))
	}
	return nil
}

func (a *App) Favourites(ctx context.Context) error {
	rows, err := a.service.ListBreedsWithImages(ctx)
	if err != nil {
		a.log.Error(ctx, "listing favourites", "error", err)
		return err
	}
	count := 0
	for _, row := range rows {
		if row.IsFavourite {
			printlnFn(formatBreedRow(row))
			count++
		}
	}
	if count == 0 {
		printlnFn("No favourites yet; use 'fav <breed-id>'.")
	}
	return nil
}
