package auth

import (
	"elite-dashboard/internal/config"
	"net/http"
	"time"
)

// NewSessionCookie builds the cookie carrying the session id.
func NewSessionCookie(cfg config.SessionConfig, sessionID string, maxAge time.Duration) *http.Cookie {
	return newCookie(cfg.Name, sessionID, "/", http.SameSiteLaxMode, cfg.Secure, maxAge)
}

func NewAccessTokenCookie(cfg config.SessionConfig, value string, maxAge time.Duration) *http.Cookie {
	return newCookie(AccessTokenCookieName, value, "/", http.SameSiteStrictMode, cfg.Secure, maxAge)
}

// NewRefreshTokenCookie is scoped to the refresh endpoint so the browser sends it nowhere else.
func NewRefreshTokenCookie(cfg config.SessionConfig, value string, maxAge time.Duration) *http.Cookie {
	return newCookie(RefreshTokenCookieName, value, RefreshTokenCookiePath, http.SameSiteStrictMode, cfg.Secure, maxAge)
}

// ExpireCookie returns a copy of c that instructs the browser to drop it.
func ExpireCookie(c *http.Cookie) *http.Cookie {
	expired := *c
	expired.Value = ""
	expired.MaxAge = -1
	expired.Expires = time.Unix(0, 0)
	return &expired
}

func newCookie(name, value, path string, sameSite http.SameSite, secure bool, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}
