package middlewares_test

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/middlewares"
	"elite-dashboard/internal/models"
	"elite-dashboard/internal/testutil"
	"elite-dashboard/internal/token"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "0123abcd"

// principalRecorder is the protected handler; it records what the middleware attached.
type principalRecorder struct {
	called    bool
	principal middlewares.Principal
}

func (p *principalRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.called = true
	if appCtx := middlewares.GetAppContext(r); appCtx != nil {
		p.principal = appCtx.GetPrincipal()
	}
	w.WriteHeader(http.StatusOK)
}

func eliteSession() *models.Session {
	return &models.Session{ID: testSessionID, UserID: "123", Role: models.RoleElite}
}

func TestRequireSession_MissingCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/staff/@me")
	defer tc.Finish()

	next := &principalRecorder{}
	tc.ServeMiddleware(middlewares.RequireSession, next)

	assert.False(t, next.called)
	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONField(t, "error", "Unauthorized")
}

func TestRequireSession_EmptyCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/staff/@me")
	defer tc.Finish()
	tc.WithCookie(tc.AppContext.Config.Sessions.Name, "")

	next := &principalRecorder{}
	tc.ServeMiddleware(middlewares.RequireSession, next)

	assert.False(t, next.called)
	tc.AssertStatus(t, http.StatusUnauthorized)
}

func TestRequireSession_StoreErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"unknown session", auth.ErrSessionNotFound, http.StatusUnauthorized, "Unauthorized"},
		{"pending session", auth.ErrInvalidSession, http.StatusUnauthorized, "Unauthorized"},
		{"store down", auth.ErrStoreUnavailable, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/staff/@me")
			defer tc.Finish()
			tc.WithCookie(tc.AppContext.Config.Sessions.Name, testSessionID)

			tc.MockSession.EXPECT().GetByID(tc.AppContext, testSessionID).Return(nil, tt.err)

			next := &principalRecorder{}
			tc.ServeMiddleware(middlewares.RequireSession, next)

			assert.False(t, next.called)
			tc.AssertStatus(t, tt.expectedStatus)
			tc.AssertJSONField(t, "error", tt.expectedBody)
		})
	}
}

func TestRequireSession_AttachesPrincipal(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/staff/@me")
	defer tc.Finish()
	tc.WithCookie(tc.AppContext.Config.Sessions.Name, testSessionID)

	session := eliteSession()
	tc.MockSession.EXPECT().GetByID(tc.AppContext, testSessionID).Return(session, nil)

	next := &principalRecorder{}
	tc.ServeMiddleware(middlewares.RequireSession, next)

	require.True(t, next.called)
	assert.Equal(t, session, next.principal)
	tc.AssertStatus(t, http.StatusOK)
	tc.AssertNoCookie(t, tc.AppContext.Config.Sessions.Name)
}

func TestRequireSession_SlidesOnRefreshPath(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/elites/@me")
	defer tc.Finish()
	tc.WithCookie(tc.AppContext.Config.Sessions.Name, testSessionID)

	tc.MockSession.EXPECT().GetByID(tc.AppContext, testSessionID).Return(eliteSession(), nil)
	tc.MockSession.EXPECT().RefreshTTL(tc.AppContext, testSessionID).Return(nil)

	next := &principalRecorder{}
	tc.ServeMiddleware(middlewares.RequireSession, next)

	require.True(t, next.called)
	c := tc.AssertCookie(t, tc.AppContext.Config.Sessions.Name, testSessionID, tc.AppContext.Config.Sessions.Timeout)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.True(t, c.Secure)
}

func TestRequireSession_SlideFailureStillServes(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/elites/@me")
	defer tc.Finish()
	tc.WithCookie(tc.AppContext.Config.Sessions.Name, testSessionID)

	tc.MockSession.EXPECT().GetByID(tc.AppContext, testSessionID).Return(eliteSession(), nil)
	tc.MockSession.EXPECT().RefreshTTL(tc.AppContext, testSessionID).Return(auth.ErrStoreUnavailable)

	next := &principalRecorder{}
	tc.ServeMiddleware(middlewares.RequireSession, next)

	assert.True(t, next.called)
	tc.AssertStatus(t, http.StatusOK)
	tc.AssertNoCookie(t, tc.AppContext.Config.Sessions.Name)
	tc.AssertLogsContainMessage(t, slog.LevelWarn, "failed to refresh session ttl")
}

func TestRequireToken(t *testing.T) {
	claims := &token.Claims{Role: models.RoleElite, RegisteredClaims: jwt.RegisteredClaims{Subject: "123"}}

	tests := []struct {
		name           string
		cookie         string
		header         string
		validated      string
		validateErr    error
		expectedStatus int
		expectCalled   bool
	}{
		{name: "no credential", expectedStatus: http.StatusUnauthorized},
		{name: "cookie", cookie: "cookie.jwt", validated: "cookie.jwt", expectedStatus: http.StatusOK, expectCalled: true},
		{name: "bearer header", header: "Bearer header.jwt", validated: "header.jwt", expectedStatus: http.StatusOK, expectCalled: true},
		{name: "cookie wins over header", cookie: "cookie.jwt", header: "Bearer header.jwt", validated: "cookie.jwt", expectedStatus: http.StatusOK, expectCalled: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", expectedStatus: http.StatusUnauthorized},
		{name: "invalid token", cookie: "bad.jwt", validated: "bad.jwt", validateErr: token.ErrInvalidToken, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/staff/@me")
			defer tc.Finish()
			tc.WithSessionMode(config.SessionModeToken)

			if tt.cookie != "" {
				tc.WithCookie(auth.AccessTokenCookieName, tt.cookie)
			}
			if tt.header != "" {
				tc.WithHeader("Authorization", tt.header)
			}
			if tt.validated != "" {
				if tt.validateErr != nil {
					tc.MockTokens.EXPECT().ValidateAccess(tt.validated).Return(nil, tt.validateErr)
				} else {
					tc.MockTokens.EXPECT().ValidateAccess(tt.validated).Return(claims, nil)
				}
			}

			next := &principalRecorder{}
			tc.ServeMiddleware(middlewares.RequireAuth, next)

			assert.Equal(t, tt.expectCalled, next.called)
			tc.AssertStatus(t, tt.expectedStatus)
			if tt.expectCalled {
				assert.Equal(t, claims, next.principal)
			}
		})
	}
}

func TestRequireAuth_SessionModeIgnoresTokens(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/staff/@me")
	defer tc.Finish()
	tc.WithCookie(auth.AccessTokenCookieName, "cookie.jwt")

	next := &principalRecorder{}
	tc.ServeMiddleware(middlewares.RequireAuth, next)

	assert.False(t, next.called)
	tc.AssertStatus(t, http.StatusUnauthorized)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		required       models.Role
		principal      middlewares.Principal
		expectedStatus int
	}{
		{"no principal", models.RoleStaff, nil, http.StatusUnauthorized},
		{"staff on staff route", models.RoleStaff, &models.Session{UserID: "1", Role: models.RoleStaff}, http.StatusOK},
		{"elite on staff route", models.RoleStaff, &models.Session{UserID: "1", Role: models.RoleElite}, http.StatusForbidden},
		{"bot on staff route", models.RoleStaff, &models.Session{UserID: "1", Role: models.RoleBot}, http.StatusForbidden},
		{"elite on elite route", models.RoleElite, &models.Session{UserID: "1", Role: models.RoleElite}, http.StatusOK},
		{"staff on elite route", models.RoleElite, &models.Session{UserID: "1", Role: models.RoleStaff}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
			defer tc.Finish()
			if tt.principal != nil {
				tc.AppContext.SetPrincipal(tt.principal)
			}

			next := &principalRecorder{}
			tc.ServeMiddleware(middlewares.RequireRole(tt.required), next)

			tc.AssertStatus(t, tt.expectedStatus)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, next.called)
			if tt.expectedStatus == http.StatusForbidden {
				tc.AssertJSONField(t, "error", "Unauthorized")
			}
		})
	}
}

func TestRequireRole_UsesPrincipalInterface(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
	defer tc.Finish()

	claims := &token.Claims{Role: models.RoleStaff, RegisteredClaims: jwt.RegisteredClaims{Subject: "9", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
	tc.AppContext.SetPrincipal(claims)

	next := &principalRecorder{}
	tc.ServeMiddleware(middlewares.RequireRole(models.RoleStaff), next)

	assert.True(t, next.called)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
		expectedLevel  slog.Level
		expectedMsg    string
	}{
		{"store failure", auth.ErrStoreUnavailable, http.StatusInternalServerError, "Internal Server Error", slog.LevelError, "request failed"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error", slog.LevelError, "request failed"},
		{"not a member", auth.ErrNotMember, http.StatusForbidden, "Unauthorized", slog.LevelDebug, "request rejected"},
		{"missing code", auth.ErrMissingCode, http.StatusBadRequest, "Bad Request", slog.LevelDebug, "request rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
			defer tc.Finish()

			tc.AppContext.WriteError(tt.err)

			tc.AssertStatus(t, tt.expectedStatus)
			tc.AssertContentType(t, "application/json")
			tc.AssertJSONField(t, "error", tt.expectedBody)
			tc.AssertLogsContainMessage(t, tt.expectedLevel, tt.expectedMsg)
		})
	}
}
