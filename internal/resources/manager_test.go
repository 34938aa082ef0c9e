package resources

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caexamhub/caprep/internal/common"
	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
	"github.com/caexamhub/caprep/internal/toast"
)

type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// fakeSessions switches between a logged-in and logged-out state.
type fakeSessions struct {
	user *models.UserRecord
}

func (f *fakeSessions) CurrentUser(context.Context) (*models.UserRecord, error) {
	return f.user, nil
}

func testCatalog() []models.Resource {
	return []models.Resource{
		{ID: 3, Title: "Strategic FM Notes"},
		{ID: 7, Title: "Audit Standards Digest"},
	}
}

func newTestManager(t *testing.T) (*Manager, *fakeSessions) {
	t.Helper()
	sessions := &fakeSessions{user: &models.UserRecord{Email: "priya@example.com"}}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewManager(newMemRepo(), sessions, testCatalog(), toast.Nop{}, log), sessions
}

func ids(t *testing.T, m *Manager) []int {
	t.Helper()
	saved, err := m.List(context.Background())
	require.NoError(t, err)
	out := make([]int, 0, len(saved))
	for _, s := range saved {
		out = append(out, s.ID)
	}
	return out
}

func TestSave_RequiresSession(t *testing.T) {
	m, sessions := newTestManager(t)
	sessions.user = nil

	err := m.Save(context.Background(), 3)
	require.ErrorIs(t, err, common.ErrNoSession)
	assert.Empty(t, ids(t, m))
}

func TestSave_UnknownResource(t *testing.T) {
	m, _ := newTestManager(t)

	err := m.Save(context.Background(), 999)
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, ids(t, m))
}

func TestSave_NoDuplicates(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, 3))
	require.NoError(t, m.Save(ctx, 3))
	require.NoError(t, m.Save(ctx, 3))

	assert.Equal(t, []int{3}, ids(t, m))
}

func TestRemove_Idempotent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, 3))
	require.NoError(t, m.Save(ctx, 7))

	require.NoError(t, m.Remove(ctx, 3))
	once := ids(t, m)
	require.NoError(t, m.Remove(ctx, 3))
	twice := ids(t, m)

	assert.Equal(t, once, twice, "double remove must equal single remove")
	assert.Equal(t, []int{7}, twice)
}

func TestSaveRemoveSave_RoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, 3))
	require.NoError(t, m.Remove(ctx, 3))
	require.NoError(t, m.Save(ctx, 3))

	assert.Equal(t, []int{3}, ids(t, m))
}

func TestList_SurvivesLogout(t *testing.T) {
	m, sessions := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, 7))
	sessions.user = nil // logged out

	assert.Equal(t, []int{7}, ids(t, m), "bookmarks persist independently of the session")
}

func TestList_EmptyIsNotNil(t *testing.T) {
	m, _ := newTestManager(t)

	saved, err := m.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Empty(t, saved)
}
