package codes

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "data", "codes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSaveLoadSet(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	in := &List{Colors: 6, Pegs: 4, Codes: [][]int{{5, 4, 3, 2}, {0, 0, 1, 1}, {2, 2, 2, 2}}}
	require.NoError(t, SaveSet(ctx, db, "week1", in))

	out, err := LoadSet(ctx, db, "week1")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Saving again under the same name replaces the set.
	repl := &List{Colors: 3, Pegs: 2, Codes: [][]int{{1, 2}}}
	require.NoError(t, SaveSet(ctx, db, "week1", repl))
	out, err = LoadSet(ctx, db, "week1")
	require.NoError(t, err)
	assert.Equal(t, repl, out)
}

func TestSaveSet_Invalid(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	err := SaveSet(ctx, db, "bad", &List{Colors: 2, Pegs: 2, Codes: [][]int{{0, 2}}})
	assert.ErrorIs(t, err, ErrColorRange)
	assert.Error(t, SaveSet(ctx, db, "  ", &List{Colors: 2, Pegs: 1, Codes: [][]int{{0}}}))

	_, err = LoadSet(ctx, db, "bad")
	assert.ErrorIs(t, err, ErrSetNotFound)
}
