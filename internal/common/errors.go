// Package common defines shared constants and sentinel errors used across
// the hospital-management client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
