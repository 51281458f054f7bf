// Package session persists the authenticated session (user record and
// bearer token) in the client-local database.
package session

import (
	"context"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
)

// Repository stores at most one session: the serialized user record and the
// bearer token, each under a well-known key. Load methods report absence as
// a zero value with a nil error.
type Repository interface {
	SaveUser(ctx context.Context, u *models.User) error
	LoadUser(ctx context.Context) (*models.User, error)
	SaveToken(ctx context.Context, token string) error
	LoadToken(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
