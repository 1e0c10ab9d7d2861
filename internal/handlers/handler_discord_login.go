package handlers

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/metrics"
	"elite-dashboard/internal/middlewares"
	"net/http"
)

// GETDiscordLoginHandler starts a login: it stores a pending session bound to a
// fresh CSRF token and hands the client the Discord consent URL.
func GETDiscordLoginHandler(ctx *middlewares.AppContext) {
	authURL, csrfToken, err := ctx.Discord.BuildAuthorizeURL()
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginOutcomeFailed).Inc()
		ctx.WriteError(err)
		return
	}

	sessionID, err := ctx.SessionManager.Init(ctx, csrfToken)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginOutcomeFailed).Inc()
		ctx.WriteError(err)
		return
	}

	ctx.SetCookie(auth.NewSessionCookie(ctx.Config.Sessions, sessionID, ctx.Config.Sessions.PendingTimeout))
	metrics.LoginAttempts.WithLabelValues(metrics.LoginOutcomeStarted).Inc()

	ctx.Logger.Debug("login started")

	ctx.Response.Header().Set("Cache-Control", "no-store")
	ctx.WriteJSON(http.StatusOK, AuthorizeURLResponse{URL: authURL})
}
