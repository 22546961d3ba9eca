// Package images stores the one cached image per breed.
package images

import (
	"context"

	"catkeeper/internal/models"
)

// Repository is the images table, keyed by breed id with last-write-wins
// upserts. GetByBreedID reports shared.ErrNotFound for a breed without an
// image.
type Repository interface {
	GetAll(ctx context.Context) ([]models.BreedImage, error)
	GetByBreedID(ctx context.Context, breedID string) (*models.BreedImage, error)
	UpsertAll(ctx context.Context, images []models.BreedImage) error
}
