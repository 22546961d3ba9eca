package images

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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.BreedImage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT breed_id, image_id, url FROM images`)
	if err != nil {
		return nil, fmt.Errorf("failed to select images: %w", err)
	}
	defer rows.Close()

	var result []models.BreedImage
	for rows.Next() {
		var img models.BreedImage
		if err := rows.Scan(&img.BreedID, &img.ImageID, &img.URL); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByBreedID(ctx context.Context, breedID string) (*models.BreedImage, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT breed_id, image_id, url FROM images WHERE breed_id=?`, breedID)

	var img models.BreedImage
	err := row.Scan(&img.BreedID, &img.ImageID, &img.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("image for breed %s: %w", breedID, shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select image: %w", err)
	}
	return &img, nil
}

func (r *SQLiteRepository) UpsertAll(ctx context.Context, images []models.BreedImage) error {
	query := `INSERT INTO images (breed_id, image_id, url)
		VALUES (?, ?, ?)
		ON CONFLICT(breed_id) DO UPDATE SET image_id = excluded.image_id,
			url = excluded.url
	`
	for _, img := range images {
		if _, err := r.db.ExecContext(ctx, query, img.BreedID, img.ImageID, img.URL); err != nil {
			return fmt.Errorf("failed to upsert image for breed %s: %w", img.BreedID, err)
		}
	}
	return nil
}
