// Package dashboard derives display-ready summaries from the session and
// saved-resources state. Everything here is read-only: the aggregator
// never mutates the store.
package dashboard

import (
	"context"
	"time"

	"github.com/caexamhub/caprep/internal/content"
	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
	"github.com/caexamhub/caprep/internal/store"
)

// HistoryEntry is one row of the quiz-history list.
type HistoryEntry struct {
	Date  time.Time
	Score int
	Total int
}

// ResourceView is a saved bookmark joined with its catalog entry.
type ResourceView struct {
	models.Resource
}

type Aggregator struct {
	repo    store.Repository
	catalog []models.Resource
	log     logging.Logger
}

func NewAggregator(repo store.Repository, catalog []models.Resource, log logging.Logger) *Aggregator {
	return &Aggregator{repo: repo, catalog: catalog, log: log.With("component", "dashboard")}
}

// HistoryView returns one entry per stored attempt, oldest first. The
// result is empty (never nil) when the user has no attempts; rendering the
// explicit "no attempts" marker is the display layer's job.
func (a *Aggregator) HistoryView(user *models.UserRecord) []HistoryEntry {
	if user == nil {
		return []HistoryEntry{}
	}
	entries := make([]HistoryEntry, 0, len(user.QuizAttempts))
	for _, att := range user.QuizAttempts {
		entries = append(entries, HistoryEntry{Date: att.CompletedAt, Score: att.Score, Total: att.Total})
	}
	return entries
}

// SavedResourcesView joins the saved id list with the static catalog, in
// saved order. Ids missing from the catalog are skipped.
func (a *Aggregator) SavedResourcesView(ctx context.Context) ([]ResourceView, error) {
	saved, _, err := store.GetJSON[[]models.SavedResource](ctx, a.repo, a.log, store.SavedResourcesKey)
	if err != nil {
		return nil, err
	}

	views := make([]ResourceView, 0, len(saved))
	for _, s := range saved {
		r, ok := content.ResourceByID(a.catalog, s.ID)
		if !ok {
			a.log.Warn(ctx, "saved resource missing from catalog", "id", s.ID)
			continue
		}
		views = append(views, ResourceView{Resource: r})
	}
	return views, nil
}

// ProgressMetric is the mean score across all attempts, or 0 when there
// are none.
func (a *Aggregator) ProgressMetric(user *models.UserRecord) float64 {
	if user == nil || len(user.QuizAttempts) == 0 {
		return 0
	}
	sum := 0
	for _, att := range user.QuizAttempts {
		sum += att.Score
	}
	return float64(sum) / float64(len(user.QuizAttempts))
}
