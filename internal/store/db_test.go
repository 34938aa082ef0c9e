package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "caprep.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteRepository(db)
	require.NoError(t, r.Set(ctx, UserKey, []byte(`{}`)))

	v, err := r.Get(ctx, UserKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
}

func TestOpen_IdempotentMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "caprep.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
