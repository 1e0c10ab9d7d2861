package auth

import (
	"elite-dashboard/internal/token"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "missing code", err: ErrMissingCode, wantStatus: http.StatusBadRequest, wantBody: "Bad Request"},
		{name: "missing state", err: ErrMissingState, wantStatus: http.StatusBadRequest, wantBody: "Bad Request"},
		{name: "missing cookie", err: ErrCredentialNotFound, wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "session not found", err: ErrSessionNotFound, wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "wrapped invalid session", err: fmt.Errorf("%w: missing user_id", ErrInvalidSession), wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "invalid token", err: fmt.Errorf("%w: expired", token.ErrInvalidToken), wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "not a member", err: ErrNotMember, wantStatus: http.StatusForbidden, wantBody: "Unauthorized"},
		{name: "staff only", err: ErrStaffOnly, wantStatus: http.StatusForbidden, wantBody: "Unauthorized"},
		{name: "store unavailable", err: fmt.Errorf("%w: get: dial tcp", ErrStoreUnavailable), wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
		{name: "provider failure", err: &ProviderRequestError{Op: "users_me", StatusCode: 502, Message: "Bad Gateway"}, wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := StatusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestProviderRequestError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ProviderRequestError{Op: "token exchange", Message: "request failed", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "token exchange")
	assert.Contains(t, err.Error(), "connection refused")

	withStatus := &ProviderRequestError{Op: "users_me", StatusCode: 401, Message: "Unauthorized"}
	assert.Equal(t, "discord users_me: status 401: Unauthorized", withStatus.Error())
}
