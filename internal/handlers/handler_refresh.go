package handlers

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/middlewares"
	"elite-dashboard/internal/models"
	"net/http"
)

// POSTRefreshHandler trades a valid refresh-token cookie for a new access/refresh pair.
func POSTRefreshHandler(ctx *middlewares.AppContext) {
	cookie, err := ctx.Request.Cookie(auth.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		ctx.WriteError(auth.ErrCredentialNotFound)
		return
	}

	claims, err := ctx.Tokens.ValidateRefresh(cookie.Value)
	if err != nil {
		clearTokenCookies(ctx)
		ctx.WriteError(err)
		return
	}

	if err := setTokenCookies(ctx, claims.GetUserID(), claims.GetRole()); err != nil {
		ctx.WriteError(err)
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}

func setTokenCookies(ctx *middlewares.AppContext, userID string, role models.Role) error {
	pair, err := ctx.Tokens.IssuePair(userID, role)
	if err != nil {
		return err
	}

	ctx.SetCookie(auth.NewAccessTokenCookie(ctx.Config.Sessions, pair.AccessToken, ctx.Config.JWT.AccessTokenExp))
	ctx.SetCookie(auth.NewRefreshTokenCookie(ctx.Config.Sessions, pair.RefreshToken, ctx.Config.JWT.RefreshTokenExp))
	return nil
}

func clearTokenCookies(ctx *middlewares.AppContext) {
	ctx.SetCookie(auth.ExpireCookie(auth.NewAccessTokenCookie(ctx.Config.Sessions, "", 0)))
	ctx.SetCookie(auth.ExpireCookie(auth.NewRefreshTokenCookie(ctx.Config.Sessions, "", 0)))
}
