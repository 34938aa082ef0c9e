package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestJSON_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	saved := []models.SavedResource{{ID: 3}, {ID: 7}}
	require.NoError(t, SetJSON(ctx, r, SavedResourcesKey, saved))

	got, ok, err := GetJSON[[]models.SavedResource](ctx, r, testLogger(), SavedResourcesKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, saved, got)
}

func TestGetJSON_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, ok, err := GetJSON[models.UserRecord](context.Background(), r, testLogger(), UserKey)
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, got)
}

func TestGetJSON_CorruptBlobTreatedAsAbsent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, UserKey, []byte(`{"email": truncated`)))

	got, ok, err := GetJSON[models.UserRecord](ctx, r, testLogger(), UserKey)
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, got)
}
