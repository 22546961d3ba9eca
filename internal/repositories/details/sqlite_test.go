package details

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catkeeper/internal/models"
	"catkeeper/internal/shared"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE details (
  breed_id TEXT PRIMARY KEY,
  description TEXT NOT NULL,
  temperament TEXT NOT NULL,
  origin TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestUpsertAll_InsertAndOverwrite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	d := models.BreedDetails{
		BreedID:     "abys",
		Description: "Lively and curious",
		Temperament: "Active, Energetic",
		Origin:      "Egypt",
	}
	require.NoError(t, r.UpsertAll(ctx, []models.BreedDetails{d}))

	got, err := r.GetByBreedID(ctx, "abys")
	require.NoError(t, err)
	assert.Equal(t, d, *got)

	d.Description = "Rewritten"
	require.NoError(t, r.Upsert(ctx, d))

	got, err = r.GetByBreedID(ctx, "abys")
	require.NoError(t, err)
	assert.Equal(t, "Rewritten", got.Description)
}

func TestGetByBreedID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByBreedID(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
