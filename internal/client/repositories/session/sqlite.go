package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/dbx"
)

// Well-known keys in the session table.
const (
	keyUser  = "user"
	keyToken = "token"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx), so callers can group writes in one transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

// SaveUser serializes u and upserts it under the user key.
func (r *SQLiteRepository) SaveUser(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return r.set(ctx, keyUser, data)
}

// LoadUser returns the stored user record, or (nil, nil) when none exists.
// A stored record that fails to decode is reported as an error so the
// caller can treat the session as corrupt.
func (r *SQLiteRepository) LoadUser(ctx context.Context) (*models.User, error) {
	data, err := r.get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteRepository) SaveToken(ctx context.Context, token string) error {
	return r.set(ctx, keyToken, []byte(token))
}

// LoadToken returns the stored bearer token, or "" when none exists.
func (r *SQLiteRepository) LoadToken(ctx context.Context) (string, error) {
	data, err := r.get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Clear removes every stored session value.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
