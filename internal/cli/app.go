// Package cli is the interactive front end of the portal: a REPL that
// binds user input to the session, quiz, dashboard, and saved-resources
// components. All state and rules live in those components; this package
// only prompts, parses, and prints.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/caexamhub/caprep/internal/config"
	"github.com/caexamhub/caprep/internal/content"
	"github.com/caexamhub/caprep/internal/dashboard"
	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
	"github.com/caexamhub/caprep/internal/quiz"
	"github.com/caexamhub/caprep/internal/resources"
	"github.com/caexamhub/caprep/internal/session"
	"github.com/caexamhub/caprep/internal/store"
	"github.com/caexamhub/caprep/internal/toast"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	notifier  toast.Notifier
	db        *sql.DB
	sessions  *session.Manager
	engine    *quiz.Engine
	dashboard *dashboard.Aggregator
	resources *resources.Manager
	catalog   []models.Resource
	reader    *bufio.Reader

	userName string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	questions, err := content.Questions()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	catalog, err := content.Resources()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	notifier := toast.NewWriterNotifier(os.Stdout)
	repo := store.NewSQLiteRepository(db)
	sessions := session.NewManager(db, notifier, log)

	app := &App{
		config:    cfg,
		log:       log,
		notifier:  notifier,
		db:        db,
		sessions:  sessions,
		engine:    quiz.NewEngine(questions, sessions, notifier, log, quiz.WithDuration(cfg.QuizDuration)),
		dashboard: dashboard.NewAggregator(repo, catalog, log),
		resources: resources.NewManager(repo, sessions, catalog, notifier, log),
		catalog:   catalog,
		reader:    bufio.NewReader(os.Stdin),
	}

	// Keep the prompt in sync with session changes.
	sessions.Subscribe(func(u *models.UserRecord) {
		if u != nil {
			app.userName = u.DisplayName
		} else {
			app.userName = ""
		}
	})

	// A session may survive a restart; restore the prompt.
	if u, err := sessions.CurrentUser(ctx); err == nil && u != nil {
		app.userName = u.DisplayName
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.userName }, scanner)
}
