package auth

import (
	"elite-dashboard/internal/token"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSessionNotFound covers a missing record and a CSRF mismatch; clients cannot tell them apart.
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSession     = errors.New("invalid session")
	ErrStoreUnavailable   = errors.New("session store unavailable")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrNotMember          = errors.New("not a guild member")
	ErrStaffOnly          = errors.New("staff only")
	ErrMissingCode        = errors.New("missing authorization code")
	ErrMissingState       = errors.New("missing state parameter")
)

// ProviderRequestError is returned for any failed call to the Discord API.
type ProviderRequestError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderRequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("discord %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("discord %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("discord %s: %s", e.Op, e.Message)
}

func (e *ProviderRequestError) Unwrap() error {
	return e.Err
}

// StatusFor collapses an internal error into the HTTP status and body text a
// client is allowed to see.
func StatusFor(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, http.StatusText(http.StatusOK)
	case errors.Is(err, ErrMissingCode), errors.Is(err, ErrMissingState):
		return http.StatusBadRequest, http.StatusText(http.StatusBadRequest)
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	case errors.Is(err, ErrCredentialNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrInvalidSession),
		errors.Is(err, token.ErrInvalidToken):
		return http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)
	case errors.Is(err, ErrNotMember), errors.Is(err, ErrStaffOnly):
		return http.StatusForbidden, http.StatusText(http.StatusUnauthorized)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
