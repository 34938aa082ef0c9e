package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
	"github.com/caexamhub/caprep/internal/store"
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

func testCatalog() []models.Resource {
	return []models.Resource{
		{ID: 1, Level: "Foundation", Title: "Accounting Basics PDF"},
		{ID: 3, Level: "Final", Title: "Strategic FM Notes"},
	}
}

func newAggregator(repo store.Repository) *Aggregator {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewAggregator(repo, testCatalog(), log)
}

func TestHistoryView_ChronologicalOrder(t *testing.T) {
	a := newAggregator(newMemRepo())

	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	user := &models.UserRecord{
		QuizAttempts: []models.QuizAttempt{
			{CompletedAt: t0, Score: 4, Total: 10},
			{CompletedAt: t0.Add(24 * time.Hour), Score: 7, Total: 10},
		},
	}

	entries := a.HistoryView(user)
	require.Len(t, entries, 2)
	assert.Equal(t, 4, entries[0].Score)
	assert.Equal(t, 7, entries[1].Score)
	assert.True(t, entries[0].Date.Before(entries[1].Date))
}

func TestHistoryView_EmptyAndNil(t *testing.T) {
	a := newAggregator(newMemRepo())

	assert.NotNil(t, a.HistoryView(nil))
	assert.Empty(t, a.HistoryView(nil))
	assert.Empty(t, a.HistoryView(&models.UserRecord{}))
}

func TestSavedResourcesView_JoinsCatalog(t *testing.T) {
	repo := newMemRepo()
	a := newAggregator(repo)
	ctx := context.Background()

	require.NoError(t, store.SetJSON(ctx, repo, store.SavedResourcesKey,
		[]models.SavedResource{{ID: 3}, {ID: 99}, {ID: 1}}))

	views, err := a.SavedResourcesView(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2, "ids missing from the catalog are skipped")
	assert.Equal(t, "Strategic FM Notes", views[0].Title)
	assert.Equal(t, "Accounting Basics PDF", views[1].Title)
}

func TestSavedResourcesView_EmptyStore(t *testing.T) {
	a := newAggregator(newMemRepo())

	views, err := a.SavedResourcesView(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestProgressMetric(t *testing.T) {
	a := newAggregator(newMemRepo())

	assert.Zero(t, a.ProgressMetric(nil))
	assert.Zero(t, a.ProgressMetric(&models.UserRecord{}), "no attempts must not divide by zero")

	user := &models.UserRecord{
		QuizAttempts: []models.QuizAttempt{
			{Score: 4, Total: 10},
			{Score: 7, Total: 10},
			{Score: 7, Total: 10},
		},
	}
	assert.InDelta(t, 6.0, a.ProgressMetric(user), 1e-9)
}
