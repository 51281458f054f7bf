// Package session owns the process-wide authentication state: the current
// user, the loading flag, and the durable copy of both in the local
// database. All mutation goes through the Manager's methods; views read
// immutable snapshots. Navigation is left to the caller: login and register
// return the role's dashboard path instead of redirecting themselves.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/api"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
	sessionrepo "github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/repositories/session"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/dbx"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/logging"
)

// ErrAuthentication marks login/register failures so the view layer can
// show a form error. Match with errors.Is.
var ErrAuthentication = errors.New("authentication failed")

var validate = validator.New(validator.WithRequiredStructEnabled())

// State is an immutable snapshot of the session.
//
// Loading is true only while a login/register round trip or the initial
// rehydration check is in flight.
type State struct {
	User    *models.User
	Loading bool
}

// Authenticated reports whether a user is set.
func (s State) Authenticated() bool {
	return s.User != nil
}

// Session is the surface the view layer depends on. *Manager is the
// production implementation; tests substitute fakes.
type Session interface {
	Login(ctx context.Context, email, password string, role models.Role) (*models.User, string, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error)
	Logout(ctx context.Context) (string, error)
	Rehydrate(ctx context.Context) error
	Snapshot() State
}

// Manager is the single writer of the session. It talks to the backend
// through Remote, keeps the bearer token in the shared TokenStore, and
// mirrors the user record into the local database on every change.
type Manager struct {
	remote api.Remote
	tokens *api.TokenStore
	db     *sql.DB
	log    logging.Logger

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

var _ Session = (*Manager)(nil)

// NewManager returns a Manager in the initial Authenticating state: Loading
// stays true until Rehydrate has run.
func NewManager(remote api.Remote, tokens *api.TokenStore, db *sql.DB, log logging.Logger) *Manager {
	return &Manager{
		remote:  remote,
		tokens:  tokens,
		db:      db,
		log:     log.With("component", "session"),
		loading: true,
	}
}

func (m *Manager) repo() sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(m.db)
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = v
}

func (m *Manager) setUser(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := State{Loading: m.loading}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// persist mirrors the user record (and token, when non-empty) into the
// local database in one transaction.
func (m *Manager) persist(ctx context.Context, u *models.User, token string) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionrepo.NewSQLiteRepository(tx)
		if err := repo.SaveUser(ctx, u); err != nil {
			return err
		}
		if token == "" {
			return nil
		}
		return repo.SaveToken(ctx, token)
	})
}

// Login authenticates against the backend, stores the bearer token, builds
// the user record, persists it, and returns the role's dashboard path. The
// loading flag is cleared on every exit path. Failures wrap
// ErrAuthentication.
func (m *Manager) Login(ctx context.Context, email, password string, role models.Role) (*models.User, string, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	if !role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", ErrAuthentication, role)
	}
	req := models.LoginRequest{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	tok, err := m.remote.Login(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "email", email, "error", err)
		return nil, "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	m.tokens.Set(tok.AccessToken)
	user := models.NewUser(email, role)

	if err := m.persist(ctx, user, tok.AccessToken); err != nil {
		m.tokens.Clear()
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}

	m.setUser(user)
	m.log.Info(ctx, "login successful", "role", role)
	return user, RedirectPath(role), nil
}

// Register creates an account, builds the user record from the submitted
// data, persists it, and returns the role's dashboard path. No token is
// issued by registration; the session is persisted without one.
func (m *Manager) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	if !req.Role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", ErrAuthentication, req.Role)
	}
	if err := validate.Struct(req); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	created, err := m.remote.Register(ctx, req)
	if err != nil {
		m.log.Warn(ctx, "registration failed", "email", req.Email, "error", err)
		return nil, "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	user := models.NewUser(req.Email, req.Role)
	user.Name = req.Name
	if created != nil && created.ID != 0 {
		user.ID = strconv.FormatInt(created.ID, 10)
	}
	if req.HospitalID != "" && req.Role.RequiresHospital() {
		user.HospitalID = req.HospitalID
	}

	if err := m.persist(ctx, user, ""); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}

	m.setUser(user)
	m.log.Info(ctx, "registration successful", "role", req.Role)
	return user, RedirectPath(req.Role), nil
}

// Logout clears the in-memory user, the bearer token, and the durable
// record, and returns the landing path. No network call is made. The
// in-memory session is cleared even when wiping durable storage fails.
func (m *Manager) Logout(ctx context.Context) (string, error) {
	m.tokens.Clear()
	m.setUser(nil)

	if err := m.repo().Clear(ctx); err != nil {
		return LandingPath, fmt.Errorf("failed to clear stored session: %w", err)
	}
	m.log.Info(ctx, "logged out")
	return LandingPath, nil
}

// Rehydrate restores the session from the local database. It runs once at
// process start, before any view reads the session. A missing, malformed,
// or stale record leaves the session unauthenticated without error; the
// loading flag is cleared unconditionally. Calling it again with unchanged
// storage yields the same state.
func (m *Manager) Rehydrate(ctx context.Context) error {
	defer m.setLoading(false)

	repo := m.repo()

	u, err := repo.LoadUser(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored session unreadable, discarding", "error", err)
		_ = repo.Clear(ctx)
		return nil
	}
	if u == nil {
		return nil
	}
	if err := u.Validate(); err != nil {
		m.log.Warn(ctx, "stored session invalid, discarding", "error", err)
		_ = repo.Clear(ctx)
		return nil
	}

	token, err := repo.LoadToken(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored token unreadable, discarding session", "error", err)
		_ = repo.Clear(ctx)
		return nil
	}
	if token != "" {
		if tokenExpired(token, time.Now()) {
			m.log.Info(ctx, "stored token expired, discarding session")
			_ = repo.Clear(ctx)
			return nil
		}
		m.tokens.Set(token)
	}

	m.setUser(u)
	m.log.Info(ctx, "session restored", "role", u.Role)
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Tokens that are not JWTs or
// carry no exp claim are treated as opaque and never expire locally.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
