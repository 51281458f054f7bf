package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/api"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/config"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/session"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/store"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects backend reachability as seen by the liveness watcher.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the session, the API client, and the REPL together.
type App struct {
	config      *config.Config
	log         logging.Logger
	session     session.Session
	remote      api.Remote
	db          *sql.DB
	reader      *bufio.Reader
	Mode        Mode
	currentPath string
}

// NewApp opens the local database, builds the API client and session
// manager, and returns a ready-to-run App.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := api.NewTokenStore()
	remote := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, tokens, log)
	sess := session.NewManager(remote, tokens, db, log)

	return &App{
		config:      cfg,
		log:         log,
		session:     sess,
		remote:      remote,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		currentPath: session.LandingPath,
	}, nil
}

// Run restores any stored session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.session.Rehydrate(ctx); err != nil {
		a.log.Warn(ctx, "session rehydration failed", "error", err)
	}
	if s := a.session.Snapshot(); s.Authenticated() {
		a.navigate(ctx, session.RedirectPath(s.User.Role))
	}

	a.Root(ctx)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// navigate records the dashboard path the view layer would redirect to.
func (a *App) navigate(ctx context.Context, path string) {
	a.currentPath = path
	a.log.Info(ctx, "navigating", "path", path)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}

// StartOnlineStatusWatcher periodically probes the backend and flips the
// online/offline mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.remote.Health(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
