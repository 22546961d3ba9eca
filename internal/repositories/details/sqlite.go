package details

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catkeeper/internal/dbx"
	"catkeeper/internal/models"
	"catkeeper/internal/shared"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetByBreedID(ctx context.Context, breedID string) (*models.BreedDetails, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT breed_id, description, temperament, origin FROM details WHERE breed_id=?`, breedID)

	var d models.BreedDetails
	err := row.Scan(&d.BreedID, &d.Description, &d.Temperament, &d.Origin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("details for breed %s: %w", breedID, shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select details: %w", err)
	}
	return &d, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, d models.BreedDetails) error {
	query := `INSERT INTO details (breed_id, description, temperament, origin)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(breed_id) DO UPDATE SET description = excluded.description,
			temperament = excluded.temperament,
			origin = excluded.origin
	`
	if _, err := r.db.ExecContext(ctx, query, d.BreedID, d.Description, d.Temperament, d.Origin); err != nil {
		return fmt.Errorf("failed to upsert details for breed %s: %w", d.BreedID, err)
	}
	return nil
}

func (r *SQLiteRepository) UpsertAll(ctx context.Context, ds []models.BreedDetails) error {
	for _, d := range ds {
		if err := r.Upsert(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
