// Package details stores the descriptive columns fetched with each breed but
// kept apart from the list-display fields.
package details

import (
	"context"

	"catkeeper/internal/models"
)

// Repository is the details table, keyed by breed id. GetByBreedID reports
// shared.ErrNotFound for a breed without details.
type Repository interface {
	GetByBreedID(ctx context.Context, breedID string) (*models.BreedDetails, error)
	Upsert(ctx context.Context, d models.BreedDetails) error
	UpsertAll(ctx context.Context, ds []models.BreedDetails) error
}
