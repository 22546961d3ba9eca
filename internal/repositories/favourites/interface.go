// Package favourites stores favourite rows keyed by image id, including
// tombstones and offline intents recorded as pending operations.
package favourites

import (
	"context"

	"catkeeper/internal/models"
)

// Repository is the favourites table. Upserts are keyed by image id, so at
// most one row exists per image. GetByImageID reports shared.ErrNotFound for
// an image that was never favourited. Delete of an absent row is a no-op.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Favourite, error)
	GetPending(ctx context.Context) ([]models.Favourite, error)
	GetByImageID(ctx context.Context, imageID string) (*models.Favourite, error)
	Upsert(ctx context.Context, f models.Favourite) error
	UpsertAll(ctx context.Context, fs []models.Favourite) error
	Delete(ctx context.Context, imageID string) error
	DeleteAll(ctx context.Context) error
}
