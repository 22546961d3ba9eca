// Package breeds stores the cached breed catalog.
package breeds

import (
	"context"

	"catkeeper/internal/models"
)

// Repository is the breeds table. UpsertAll replaces rows on id conflict;
// GetByID reports shared.ErrNotFound for an unknown id.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Breed, error)
	GetByID(ctx context.Context, breedID string) (*models.Breed, error)
	UpsertAll(ctx context.Context, breeds []models.Breed) error
}
