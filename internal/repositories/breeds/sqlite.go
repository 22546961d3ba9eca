package breeds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catkeeper/internal/dbx"
	"catkeeper/internal/models"
	"catkeeper/internal/shared"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx), so the refresh cycle can run it inside a transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Breed, error) {
	query := `SELECT id, name, reference_image_id, min_life_span, max_life_span FROM breeds ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select breeds: %w", err)
	}
	defer rows.Close()

	var result []models.Breed
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, breedID string) (*models.Breed, error) {
	query := `SELECT id, name, reference_image_id, min_life_span, max_life_span FROM breeds WHERE id=?`
	row := r.db.QueryRowContext(ctx, query, breedID)

	var b models.Breed
	var refImageID sql.NullString
	var minLife, maxLife sql.NullInt64
	err := row.Scan(&b.ID, &b.Name, &refImageID, &minLife, &maxLife)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("breed %s: %w", breedID, shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select breed: %w", err)
	}
	applyNullables(&b, refImageID, minLife, maxLife)
	return &b, nil
}

// UpsertAll writes the whole catalog, replacing conflicting rows. Rows for
// breeds no longer served by the API are left behind; the catalog only ever
// grows and stale entries are harmless to the merge.
func (r *SQLiteRepository) UpsertAll(ctx context.Context, breeds []models.Breed) error {
	query := `INSERT INTO breeds (id, name, reference_image_id, min_life_span, max_life_span)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			reference_image_id = excluded.reference_image_id,
			min_life_span = excluded.min_life_span,
			max_life_span = excluded.max_life_span
	`
	for _, b := range breeds {
		_, err := r.db.ExecContext(ctx, query,
			b.ID, b.Name, b.ReferenceImageID, b.MinLifeSpan, b.MaxLifeSpan)
		if err != nil {
			return fmt.Errorf("failed to upsert breed %s: %w", b.ID, err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBreed(s scanner) (models.Breed, error) {
	var b models.Breed
	var refImageID sql.NullString
	var minLife, maxLife sql.NullInt64
	if err := s.Scan(&b.ID, &b.Name, &refImageID, &minLife, &maxLife); err != nil {
		return models.Breed{}, fmt.Errorf("failed to scan breed: %w", err)
	}
	applyNullables(&b, refImageID, minLife, maxLife)
	return b, nil
}

func applyNullables(b *models.Breed, refImageID sql.NullString, minLife, maxLife sql.NullInt64) {
	if refImageID.Valid {
		b.ReferenceImageID = &refImageID.String
	}
	if minLife.Valid {
		v := int(minLife.Int64)
		b.MinLifeSpan = &v
	}
	if maxLife.Valid {
		v := int(maxLife.Int64)
		b.MaxLifeSpan = &v
	}
}
