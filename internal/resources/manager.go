// Package resources manages the saved-resources bookmark list. Mutations
// require an active session; the list itself lives under its own store key
// and survives logout.
package resources

import (
	"context"
	"fmt"

	"github.com/caexamhub/caprep/internal/common"
	"github.com/caexamhub/caprep/internal/content"
	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
	"github.com/caexamhub/caprep/internal/store"
	"github.com/caexamhub/caprep/internal/toast"
)

// SessionChecker reports the current user; satisfied by session.Manager.
type SessionChecker interface {
	CurrentUser(ctx context.Context) (*models.UserRecord, error)
}

type Manager struct {
	repo     store.Repository
	sessions SessionChecker
	catalog  []models.Resource
	notifier toast.Notifier
	log      logging.Logger
}

func NewManager(repo store.Repository, sessions SessionChecker, catalog []models.Resource, notifier toast.Notifier, log logging.Logger) *Manager {
	return &Manager{
		repo:     repo,
		sessions: sessions,
		catalog:  catalog,
		notifier: notifier,
		log:      log.With("component", "resources"),
	}
}

// Save bookmarks the catalog entry with the given id. Requires an active
// session; an already-saved id is a silent success, not an error.
func (m *Manager) Save(ctx context.Context, id int) error {
	user, err := m.sessions.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		m.notifier.Notify("Login to save!", toast.SeverityInfo)
		return common.ErrNoSession
	}

	r, ok := content.ResourceByID(m.catalog, id)
	if !ok {
		m.notifier.Notify("Unknown resource!", toast.SeverityError)
		return fmt.Errorf("resource %d: %w", id, common.ErrNotFound)
	}

	saved, _, err := store.GetJSON[[]models.SavedResource](ctx, m.repo, m.log, store.SavedResourcesKey)
	if err != nil {
		return err
	}
	for _, s := range saved {
		if s.ID == id {
			return nil
		}
	}

	saved = append(saved, models.SavedResource{ID: id})
	if err := store.SetJSON(ctx, m.repo, store.SavedResourcesKey, saved); err != nil {
		return err
	}

	m.log.Info(ctx, "resource saved", "id", id, "title", r.Title)
	m.notifier.Notify("Saved to dashboard!", toast.SeveritySuccess)
	return nil
}

// Remove drops the bookmark if present. Idempotent: removing an absent id
// still persists the (unchanged) list and succeeds.
func (m *Manager) Remove(ctx context.Context, id int) error {
	saved, _, err := store.GetJSON[[]models.SavedResource](ctx, m.repo, m.log, store.SavedResourcesKey)
	if err != nil {
		return err
	}

	kept := make([]models.SavedResource, 0, len(saved))
	for _, s := range saved {
		if s.ID != id {
			kept = append(kept, s)
		}
	}

	if err := store.SetJSON(ctx, m.repo, store.SavedResourcesKey, kept); err != nil {
		return err
	}

	m.notifier.Notify("Removed!", toast.SeverityInfo)
	return nil
}

// List returns the saved bookmarks in insertion order.
func (m *Manager) List(ctx context.Context) ([]models.SavedResource, error) {
	saved, _, err := store.GetJSON[[]models.SavedResource](ctx, m.repo, m.log, store.SavedResourcesKey)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = []models.SavedResource{}
	}
	return saved, nil
}
