package favourites

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
// *sql.Tx), so the refresh reconciliation can swap the table atomically.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Favourite, error) {
	return r.selectMany(ctx,
		`SELECT image_id, favourite_id, pending_operation FROM favourites`)
}

// GetPending returns the rows carrying an unsynchronized intent.
func (r *SQLiteRepository) GetPending(ctx context.Context) ([]models.Favourite, error) {
	return r.selectMany(ctx,
		`SELECT image_id, favourite_id, pending_operation FROM favourites WHERE pending_operation != ?`,
		string(models.PendingNone))
}

func (r *SQLiteRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.Favourite, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select favourites: %w", err)
	}
	defer rows.Close()

	var result []models.Favourite
	for rows.Next() {
		f, err := scanFavourite(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByImageID(ctx context.Context, imageID string) (*models.Favourite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT image_id, favourite_id, pending_operation FROM favourites WHERE image_id=?`, imageID)

	f, err := scanFavourite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("favourite for image %s: %w", imageID, shared.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, f models.Favourite) error {
	query := `INSERT INTO favourites (image_id, favourite_id, pending_operation)
		VALUES (?, ?, ?)
		ON CONFLICT(image_id) DO UPDATE SET favourite_id = excluded.favourite_id,
			pending_operation = excluded.pending_operation
	`
	_, err := r.db.ExecContext(ctx, query, f.ImageID, f.FavouriteID, string(f.PendingOperation))
	if err != nil {
		return fmt.Errorf("failed to upsert favourite %s: %w", f.ImageID, err)
	}
	return nil
}

func (r *SQLiteRepository) UpsertAll(ctx context.Context, fs []models.Favourite) error {
	for _, f := range fs {
		if err := r.Upsert(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, imageID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favourites WHERE image_id=?`, imageID); err != nil {
		return fmt.Errorf("failed to delete favourite %s: %w", imageID, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favourites`); err != nil {
		return fmt.Errorf("failed to clear favourites: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFavourite(s scanner) (models.Favourite, error) {
	var f models.Favourite
	var favID sql.NullString
	var pending string
	if err := s.Scan(&f.ImageID, &favID, &pending); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favourite{}, err
		}
		return models.Favourite{}, fmt.Errorf("failed to scan favourite: %w", err)
	}
	if favID.Valid {
		f.FavouriteID = &favID.String
	}
	f.PendingOperation = models.PendingOperation(pending)
	return f, nil
}
