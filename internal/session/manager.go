// Package session owns the single locally registered account: registration,
// login, logout, current-user queries, and the append-only quiz history
// carried inside the user record. Every mutation is written through to the
// store before the call returns; observers are notified only after the
// write is durable.
package session

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/caexamhub/caprep/internal/common"
	"github.com/caexamhub/caprep/internal/cryptox"
	"github.com/caexamhub/caprep/internal/dbx"
	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
	"github.com/caexamhub/caprep/internal/store"
	"github.com/caexamhub/caprep/internal/toast"
)

// Observer is called after every session state change with the new current
// user, or nil after logout.
type Observer func(*models.UserRecord)

// Manager is the session component. It holds the database handle rather
// than a repository so read-modify-write operations can run inside a
// transaction.
type Manager struct {
	db       *sql.DB
	notifier toast.Notifier
	log      logging.Logger
	validate *validator.Validate

	mu        sync.Mutex
	observers []Observer
}

// credentials mirrors the register form: a syntactically valid address and
// a password of at least six characters.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func NewManager(db *sql.DB, notifier toast.Notifier, log logging.Logger) *Manager {
	return &Manager{
		db:       db,
		notifier: notifier,
		log:      log.With("component", "session"),
		validate: validator.New(),
	}
}

func (m *Manager) repo() store.Repository {
	return store.NewSQLiteRepository(m.db)
}

// Subscribe registers an observer for session changes. Observers are
// invoked synchronously, in subscription order.
func (m *Manager) Subscribe(fn Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *Manager) notifyObservers(u *models.UserRecord) {
	m.mu.Lock()
	observers := make([]Observer, len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	for _, fn := range observers {
		fn(u)
	}
}

// Register creates the local account, replacing any existing record along
// with its quiz history. The password is salted and stretched before
// anything touches the store; plaintext is never persisted.
func (m *Manager) Register(ctx context.Context, email string, password []byte) (*models.UserRecord, error) {
	creds := credentials{Email: email, Password: string(password)}
	if err := m.validate.Struct(creds); err != nil {
		m.notifier.Notify("Invalid email or password too short!", toast.SeverityError)
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveCredentialKey(password, salt)

	user := &models.UserRecord{
		Email:        email,
		Salt:         salt,
		Verifier:     cryptox.MakeVerifier(key),
		DisplayName:  models.DisplayNameFromEmail(email),
		JoinedAt:     time.Now(),
		QuizAttempts: []models.QuizAttempt{},
	}

	if err := store.SetJSON(ctx, m.repo(), store.UserKey, user); err != nil {
		return nil, fmt.Errorf("failed to persist user record: %w", err)
	}

	m.log.Info(ctx, "account registered", "email", email)
	m.notifier.Notify("Registration successful! Welcome!", toast.SeveritySuccess)
	m.notifyObservers(user)
	return user, nil
}

// Login verifies the given credentials against the stored record. A missing
// record, a different email, or a wrong password all yield
// common.ErrInvalidCredentials with no way to tell the cases apart.
func (m *Manager) Login(ctx context.Context, email string, password []byte) (*models.UserRecord, error) {
	user, ok, err := store.GetJSON[models.UserRecord](ctx, m.repo(), m.log, store.UserKey)
	if err != nil {
		return nil, err
	}
	if !ok || user.Email != email {
		m.notifier.Notify("Invalid credentials!", toast.SeverityError)
		return nil, common.ErrInvalidCredentials
	}

	candidate := cryptox.MakeVerifier(cryptox.DeriveCredentialKey(password, user.Salt))
	if subtle.ConstantTimeCompare(user.Verifier, candidate) == 0 {
		m.notifier.Notify("Invalid credentials!", toast.SeverityError)
		return nil, common.ErrInvalidCredentials
	}

	m.log.Info(ctx, "login", "email", email)
	m.notifier.Notify("Login successful!", toast.SeveritySuccess)
	m.notifyObservers(&user)
	return &user, nil
}

// Logout deletes the user record and the legacy quiz-history blob. Saved
// resources deliberately survive: bookmarks belong to the origin, not the
// account record.
func (m *Manager) Logout(ctx context.Context) error {
	repo := m.repo()
	if err := repo.Delete(ctx, store.UserKey); err != nil {
		return err
	}
	if err := repo.Delete(ctx, store.QuizHistoryKey); err != nil {
		return err
	}

	m.log.Info(ctx, "logout")
	m.notifier.Notify("Logged out successfully!", toast.SeveritySuccess)
	m.notifyObservers(nil)
	return nil
}

// CurrentUser returns the active user record, or nil when logged out.
// Read-only: a corrupt stored blob reads as logged out.
func (m *Manager) CurrentUser(ctx context.Context) (*models.UserRecord, error) {
	user, ok, err := store.GetJSON[models.UserRecord](ctx, m.repo(), m.log, store.UserKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// AppendAttempt appends a finished quiz result to the current user's
// history. The read-modify-write runs in one transaction so a concurrent
// tick or a crash can never leave a half-applied record. Returns
// common.ErrNoSession when nobody is logged in; nothing is persisted then.
func (m *Manager) AppendAttempt(ctx context.Context, score, total int) (*models.QuizAttempt, error) {
	attempt := &models.QuizAttempt{
		ID:          uuid.NewString(),
		CompletedAt: time.Now(),
		Score:       score,
		Total:       total,
	}

	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := store.NewSQLiteRepository(tx)

		user, ok, err := store.GetJSON[models.UserRecord](ctx, repo, m.log, store.UserKey)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrNoSession
		}

		user.QuizAttempts = append(user.QuizAttempts, *attempt)
		return store.SetJSON(ctx, repo, store.UserKey, &user)
	})
	if err != nil {
		return nil, err
	}

	m.log.Info(ctx, "quiz attempt saved", "score", score, "total", total)
	return attempt, nil
}
