package handlers

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/middlewares"
	"net/http"
)

// POSTLogoutHandler deletes the server-side session, or just the token cookies in token mode.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	if ctx.Config.Sessions.Mode == config.SessionModeToken {
		clearTokenCookies(ctx)
		ctx.SetJSONStatus(http.StatusOK, "OK")
		return
	}

	cookie, err := ctx.Request.Cookie(ctx.Config.Sessions.Name)
	if err != nil || cookie.Value == "" {
		ctx.WriteError(auth.ErrCredentialNotFound)
		return
	}

	if err := ctx.SessionManager.Invalidate(ctx, cookie.Value); err != nil {
		ctx.WriteError(err)
		return
	}

	ctx.SetCookie(auth.ExpireCookie(auth.NewSessionCookie(ctx.Config.Sessions, "", 0)))
	ctx.Logger.Info("session invalidated")

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
