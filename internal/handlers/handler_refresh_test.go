package handlers

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/models"
	"elite-dashboard/internal/testutil"
	"elite-dashboard/internal/token"
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func newRefreshContext(t *testing.T) *testutil.TestContext {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/refresh")
	tc.WithSessionMode(config.SessionModeToken)
	return tc
}

func TestPOSTRefreshHandler_ShouldReissueBothCookies(t *testing.T) {
	tc := newRefreshContext(t)
	defer tc.Finish()
	tc.WithCookie(auth.RefreshTokenCookieName, "old-refresh.jwt")

	claims := &token.Claims{Role: models.RoleStaff, RegisteredClaims: jwt.RegisteredClaims{Subject: "123"}}
	tc.MockTokens.EXPECT().ValidateRefresh("old-refresh.jwt").Return(claims, nil)
	tc.MockTokens.EXPECT().IssuePair("123", models.RoleStaff).Return(&token.Pair{AccessToken: "new-access.jwt", RefreshToken: "new-refresh.jwt"}, nil)

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "status", "OK")
	tc.AssertCookie(t, auth.AccessTokenCookieName, "new-access.jwt", tc.AppContext.Config.JWT.AccessTokenExp)
	tc.AssertCookie(t, auth.RefreshTokenCookieName, "new-refresh.jwt", tc.AppContext.Config.JWT.RefreshTokenExp)
}

func TestPOSTRefreshHandler_ShouldRejectMissingCookie(t *testing.T) {
	tc := newRefreshContext(t)
	defer tc.Finish()

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONField(t, "error", "Unauthorized")
}

func TestPOSTRefreshHandler_ShouldClearCookiesOnInvalidToken(t *testing.T) {
	tc := newRefreshContext(t)
	defer tc.Finish()
	tc.WithCookie(auth.RefreshTokenCookieName, "forged.jwt")

	tc.MockTokens.EXPECT().ValidateRefresh("forged.jwt").Return(nil, token.ErrInvalidToken)

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertCookieCleared(t, auth.AccessTokenCookieName)
	tc.AssertCookieCleared(t, auth.RefreshTokenCookieName)
}

func TestPOSTRefreshHandler_ShouldErrorWhenIssueFails(t *testing.T) {
	tc := newRefreshContext(t)
	defer tc.Finish()
	tc.WithCookie(auth.RefreshTokenCookieName, "old-refresh.jwt")

	claims := &token.Claims{Role: models.RoleElite, RegisteredClaims: jwt.RegisteredClaims{Subject: "123"}}
	tc.MockTokens.EXPECT().ValidateRefresh("old-refresh.jwt").Return(claims, nil)
	tc.MockTokens.EXPECT().IssuePair("123", models.RoleElite).Return(nil, errors.New("signing failed"))

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertNoCookie(t, auth.AccessTokenCookieName)
}
