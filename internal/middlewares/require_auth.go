package middlewares

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/models"
	"elite-dashboard/internal/utils"
	"errors"
	"net/http"
)

// RequireAuth gates a route with whichever credential the configured session mode issues.
func RequireAuth(next http.Handler) http.Handler {
	session := RequireSession(next)
	token := RequireToken(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if appCtx.Config.Sessions.Mode == config.SessionModeToken {
			token.ServeHTTP(w, r)
			return
		}

		session.ServeHTTP(w, r)
	})
}

// RequireSession resolves the session cookie against the store and attaches the session as principal.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		cookie, err := r.Cookie(appCtx.Config.Sessions.Name)
		if err != nil || cookie.Value == "" {
			appCtx.WriteError(auth.ErrCredentialNotFound)
			return
		}

		session, err := appCtx.SessionManager.GetByID(appCtx, cookie.Value)
		if err != nil {
			appCtx.WriteError(err)
			return
		}

		appCtx.SetPrincipal(session)

		if r.URL.Path == appCtx.Config.Sessions.RefreshPath {
			slideSession(appCtx, cookie.Value)
		}

		next.ServeHTTP(w, r)
	})
}

// slideSession extends the session and its cookie. Failures only cost the extension.
func slideSession(appCtx *AppContext, sessionID string) {
	if err := appCtx.SessionManager.RefreshTTL(appCtx, sessionID); err != nil {
		appCtx.Logger.Warn("failed to refresh session ttl", "error", err)
		return
	}

	appCtx.SetCookie(auth.NewSessionCookie(appCtx.Config.Sessions, sessionID, appCtx.Config.Sessions.Timeout))
}

// RequireToken validates the access token from the auth-token cookie or a bearer header.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		raw, err := utils.ExtractCredential(r, auth.AccessTokenCookieName)
		if err != nil {
			appCtx.WriteError(errors.Join(auth.ErrCredentialNotFound, err))
			return
		}

		claims, err := appCtx.Tokens.ValidateAccess(raw)
		if err != nil {
			appCtx.WriteError(err)
			return
		}

		appCtx.SetPrincipal(claims)
		next.ServeHTTP(w, r)
	})
}

// RequireRole must run after RequireAuth. It only inspects the attached principal.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			principal := appCtx.GetPrincipal()
			if principal == nil {
				appCtx.WriteError(auth.ErrCredentialNotFound)
				return
			}

			if !principal.HasRole(role) {
				if role == models.RoleStaff {
					appCtx.WriteError(auth.ErrStaffOnly)
				} else {
					appCtx.WriteError(auth.ErrNotMember)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
