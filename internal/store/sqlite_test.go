package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, UserKey, []byte(`{"email":"a@b.c"}`)))

	v, err := r.Get(ctx, UserKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"email":"a@b.c"}`), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, SavedResourcesKey, []byte(`[{"id":1}]`)))
	require.NoError(t, r.Set(ctx, SavedResourcesKey, []byte(`[{"id":1},{"id":2}]`)))

	v, err := r.Get(ctx, SavedResourcesKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":1},{"id":2}]`), v)
}

func TestDelete_RemovesKey(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, UserKey, []byte(`{}`)))
	require.NoError(t, r.Delete(ctx, UserKey))

	v, err := r.Get(ctx, UserKey)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestDelete_AbsentKeyIsNoop(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	require.NoError(t, r.Delete(context.Background(), QuizHistoryKey))
}
