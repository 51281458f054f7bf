package session

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/api"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
	sessionrepo "github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/repositories/session"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func newDiscardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fake remote ----

// fakeRemote implements api.Remote for unit-testing the Manager.
type fakeRemote struct {
	LoginRet *models.TokenResponse
	LoginErr error

	RegisterRet *models.RegisteredUser
	RegisterErr error

	LastLoginEmail    string
	LastLoginPassword string
	LastRegister      *models.RegisterRequest
}

func (f *fakeRemote) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	if f.LoginRet != nil {
		return f.LoginRet, nil
	}
	return &models.TokenResponse{AccessToken: "tok-123", TokenType: "bearer"}, nil
}

func (f *fakeRemote) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisteredUser, error) {
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeRemote) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return nil
}

func (f *fakeRemote) GetCurrentUser(ctx context.Context) (*models.User, error) { return nil, nil }

func (f *fakeRemote) GetAppointments(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRemote) RescheduleAppointment(ctx context.Context, id int64, update *models.AppointmentUpdate) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeRemote) StartConsultation(ctx context.Context, id int64) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeRemote) GetLabTests(ctx context.Context) ([]models.LabTest, error) { return nil, nil }

func (f *fakeRemote) UpdateTestStatus(ctx context.Context, id int64, status string) (*models.LabTest, error) {
	return nil, nil
}

func (f *fakeRemote) GenerateTestReport(ctx context.Context, id int64) (*models.LabReport, error) {
	return nil, nil
}

func (f *fakeRemote) GetHospitals(ctx context.Context) ([]models.Hospital, error) { return nil, nil }

func (f *fakeRemote) ApproveHospital(ctx context.Context, id int64) (*models.Hospital, error) {
	return nil, nil
}

func (f *fakeRemote) RejectHospital(ctx context.Context, id int64, reason string) (*models.Hospital, error) {
	return nil, nil
}

func (f *fakeRemote) GetMedicines(ctx context.Context) ([]models.Medicine, error) { return nil, nil }

func (f *fakeRemote) ToggleMedicineAvailability(ctx context.Context, id int64) (*models.Medicine, error) {
	return nil, nil
}

func (f *fakeRemote) ExportPharmacyData(ctx context.Context) (*models.PharmacyExport, error) {
	return nil, nil
}

func (f *fakeRemote) Health(ctx context.Context) error { return nil }

// ---- setup ----

func newTestManager(t *testing.T, remote *fakeRemote) (*Manager, *api.TokenStore, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	tokens := api.NewTokenStore()
	m := NewManager(remote, tokens, db, newDiscardLogger())
	return m, tokens, db
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

// ---- tests ----

func TestManager_InitialStateIsAuthenticating(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeRemote{})
	s := m.Snapshot()
	assert.True(t, s.Loading)
	assert.False(t, s.Authenticated())
}

func TestManager_LoginPatient(t *testing.T) {
	remote := &fakeRemote{}
	m, tokens, _ := newTestManager(t, remote)
	ctx := context.Background()

	user, redirect, err := m.Login(ctx, "a@b.com", "x", models.RolePatient)
	require.NoError(t, err)

	assert.Equal(t, models.RolePatient, user.Role)
	assert.Empty(t, user.HospitalID)
	assert.Equal(t, "/patient/dashboard", redirect)
	assert.Equal(t, "a@b.com", remote.LastLoginEmail)
	assert.Equal(t, "tok-123", tokens.Get())

	s := m.Snapshot()
	assert.True(t, s.Authenticated())
	assert.False(t, s.Loading)
}

func TestManager_LoginDoctor(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeRemote{})

	user, redirect, err := m.Login(context.Background(), "c@d.com", "x", models.RoleDoctor)
	require.NoError(t, err)

	assert.Equal(t, "1", user.HospitalID)
	assert.Equal(t, "/doctor/dashboard", redirect)
}

func TestManager_LoginHospitalAffiliationInvariant(t *testing.T) {
	for _, role := range models.Roles {
		t.Run(string(role), func(t *testing.T) {
			m, _, _ := newTestManager(t, &fakeRemote{})

			user, _, err := m.Login(context.Background(), "a@b.com", "x", role)
			require.NoError(t, err)

			if role.RequiresHospital() {
				assert.NotEmpty(t, user.HospitalID)
			} else {
				assert.Empty(t, user.HospitalID)
			}
		})
	}
}

func TestManager_LoginPersistsUserAndToken(t *testing.T) {
	m, _, db := newTestManager(t, &fakeRemote{})
	ctx := context.Background()

	user, _, err := m.Login(ctx, "c@d.com", "x", models.RoleDoctor)
	require.NoError(t, err)

	repo := sessionrepo.NewSQLiteRepository(db)
	stored, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user, stored)

	tok, err := repo.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestManager_LoginFailure(t *testing.T) {
	remote := &fakeRemote{LoginErr: errors.New("invalid credentials")}
	m, tokens, _ := newTestManager(t, remote)

	_, _, err := m.Login(context.Background(), "a@b.com", "wrong", models.RolePatient)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)

	s := m.Snapshot()
	assert.False(t, s.Loading, "loading must be cleared on failure")
	assert.False(t, s.Authenticated())
	assert.Empty(t, tokens.Get())
}

func TestManager_LoginRejectsUnknownRole(t *testing.T) {
	remote := &fakeRemote{}
	m, _, _ := newTestManager(t, remote)

	_, _, err := m.Login(context.Background(), "a@b.com", "x", models.Role("admin"))
	require.ErrorIs(t, err, ErrAuthentication)
	assert.Empty(t, remote.LastLoginEmail, "backend must not be called")
}

func TestManager_LoginRejectsInvalidEmail(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeRemote{})

	_, _, err := m.Login(context.Background(), "not-an-email", "x", models.RolePatient)
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestManager_RegisterUsesCanonicalRedirects(t *testing.T) {
	tests := []struct {
		role models.Role
		want string
	}{
		{models.RolePatient, "/patient/dashboard"},
		{models.RoleDoctor, "/doctor/dashboard"},
		{models.RoleHospitalAdmin, "/hospital-admin/dashboard"},
		{models.RoleSystemAdmin, "/system-admin/dashboard"},
		{models.RoleLab, "/lab/dashboard"},
		{models.RolePharmacist, "/pharmacist/dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			m, _, _ := newTestManager(t, &fakeRemote{})

			req := &models.RegisterRequest{
				Email:    "new@b.com",
				Password: "longenough",
				Name:     "New User",
				Role:     tt.role,
			}
			user, redirect, err := m.Register(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, redirect)
			assert.Equal(t, "New User", user.Name)
		})
	}
}

func TestManager_RegisterTakesBackendID(t *testing.T) {
	remote := &fakeRemote{RegisterRet: &models.RegisteredUser{ID: 42, Email: "new@b.com"}}
	m, _, _ := newTestManager(t, remote)

	req := &models.RegisterRequest{
		Email:    "new@b.com",
		Password: "longenough",
		Name:     "New User",
		Role:     models.RolePatient,
	}
	user, _, err := m.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
}

func TestManager_RegisterFailure(t *testing.T) {
	remote := &fakeRemote{RegisterErr: errors.New("email already registered")}
	m, _, _ := newTestManager(t, remote)

	req := &models.RegisterRequest{
		Email:    "dup@b.com",
		Password: "longenough",
		Name:     "Dup",
		Role:     models.RolePatient,
	}
	_, _, err := m.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrAuthentication)

	s := m.Snapshot()
	assert.False(t, s.Loading)
	assert.False(t, s.Authenticated())
}

func TestManager_RegisterRejectsShortPassword(t *testing.T) {
	remote := &fakeRemote{}
	m, _, _ := newTestManager(t, remote)

	req := &models.RegisterRequest{
		Email:    "new@b.com",
		Password: "short",
		Name:     "New User",
		Role:     models.RolePatient,
	}
	_, _, err := m.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrAuthentication)
	assert.Nil(t, remote.LastRegister, "backend must not be called")
}

func TestManager_Logout(t *testing.T) {
	m, tokens, db := newTestManager(t, &fakeRemote{})
	ctx := context.Background()

	_, _, err := m.Login(ctx, "a@b.com", "x", models.RolePatient)
	require.NoError(t, err)

	path, err := m.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/", path)
	assert.Empty(t, tokens.Get())
	assert.False(t, m.Snapshot().Authenticated())

	repo := sessionrepo.NewSQLiteRepository(db)
	stored, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestManager_RehydrateRestoresSession(t *testing.T) {
	m, tokens, db := newTestManager(t, &fakeRemote{})
	ctx := context.Background()

	repo := sessionrepo.NewSQLiteRepository(db)
	require.NoError(t, repo.SaveUser(ctx, models.NewUser("c@d.com", models.RoleDoctor)))
	require.NoError(t, repo.SaveToken(ctx, signedToken(t, time.Now().Add(time.Hour))))

	require.NoError(t, m.Rehydrate(ctx))

	s := m.Snapshot()
	require.True(t, s.Authenticated())
	assert.Equal(t, models.RoleDoctor, s.User.Role)
	assert.False(t, s.Loading)
	assert.NotEmpty(t, tokens.Get())
}

func TestManager_RehydrateEmptyStorage(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeRemote{})

	require.NoError(t, m.Rehydrate(context.Background()))

	s := m.Snapshot()
	assert.False(t, s.Authenticated())
	assert.False(t, s.Loading, "loading must be cleared even when nothing is stored")
}

func TestManager_RehydrateIsIdempotent(t *testing.T) {
	m, _, db := newTestManager(t, &fakeRemote{})
	ctx := context.Background()

	repo := sessionrepo.NewSQLiteRepository(db)
	require.NoError(t, repo.SaveUser(ctx, models.NewUser("a@b.com", models.RolePatient)))

	require.NoError(t, m.Rehydrate(ctx))
	first := m.Snapshot()

	require.NoError(t, m.Rehydrate(ctx))
	second := m.Snapshot()

	assert.Equal(t, first, second)
}

func TestManager_RehydrateDiscardsCorruptRecord(t *testing.T) {
	m, _, db := newTestManager(t, &fakeRemote{})
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session(key,value) VALUES('user', X'7B')`)
	require.NoError(t, err)

	require.NoError(t, m.Rehydrate(ctx))

	s := m.Snapshot()
	assert.False(t, s.Authenticated())
	assert.False(t, s.Loading)

	repo := sessionrepo.NewSQLiteRepository(db)
	stored, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored, "corrupt record must be wiped")
}

func TestManager_RehydrateDiscardsExpiredToken(t *testing.T) {
	m, tokens, db := newTestManager(t, &fakeRemote{})
	ctx := context.Background()

	repo := sessionrepo.NewSQLiteRepository(db)
	require.NoError(t, repo.SaveUser(ctx, models.NewUser("a@b.com", models.RolePatient)))
	require.NoError(t, repo.SaveToken(ctx, signedToken(t, time.Now().Add(-time.Hour))))

	require.NoError(t, m.Rehydrate(ctx))

	assert.False(t, m.Snapshot().Authenticated())
	assert.Empty(t, tokens.Get())
}

func TestManager_RehydrateKeepsOpaqueToken(t *testing.T) {
	m, tokens, db := newTestManager(t, &fakeRemote{})
	ctx := context.Background()

	repo := sessionrepo.NewSQLiteRepository(db)
	require.NoError(t, repo.SaveUser(ctx, models.NewUser("a@b.com", models.RolePatient)))
	require.NoError(t, repo.SaveToken(ctx, "not-a-jwt"))

	require.NoError(t, m.Rehydrate(ctx))

	assert.True(t, m.Snapshot().Authenticated())
	assert.Equal(t, "not-a-jwt", tokens.Get())
}

func TestRedirectPath(t *testing.T) {
	assert.Equal(t, "/patient/dashboard", RedirectPath(models.RolePatient))
	assert.Equal(t, "/hospital-admin/dashboard", RedirectPath(models.RoleHospitalAdmin))
	assert.Equal(t, LandingPath, RedirectPath(models.Role("unknown")))
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, tokenExpired(signedToken(t, now.Add(-time.Minute)), now))
	assert.False(t, tokenExpired(signedToken(t, now.Add(time.Minute)), now))
	assert.False(t, tokenExpired("opaque-token", now))
}
