package api

import (
	json "github.com/goccy/go-json"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/common"
)

// genericFailure is surfaced when the backend returns a non-2xx status
// without a usable detail field.
const genericFailure = "API request failed"

// Error is an application-level failure: the backend answered with a non-2xx
// status. Detail carries the server-supplied message verbatim when present.
// Use errors.As to recover the status, or errors.Is against the common
// sentinels (common.ErrUnauthorized, common.ErrNotFound).
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case common.ErrNotFound:
		return e.Status == 404
	}
	return false
}

// newError builds an Error from a non-2xx response body.
func newError(status int, body []byte) *Error {
	detail := genericFailure
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}
	return &Error{Status: status, Detail: detail}
}
