package handlers

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/metrics"
	"elite-dashboard/internal/middlewares"
	"elite-dashboard/internal/models"
	"errors"
	"net/http"
)

// GETDiscordCallbackHandler finishes a login started by GETDiscordLoginHandler.
// Every outcome renders the same popup page; only the status and success flag differ.
func GETDiscordCallbackHandler(ctx *middlewares.AppContext) {
	query := ctx.Request.URL.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		ctx.Logger.Warn("discord rejected the authorization request",
			"error", providerErr,
			"error_description", query.Get("error_description"))

		outcome := metrics.LoginOutcomeFailed
		if providerErr == "access_denied" {
			outcome = metrics.LoginOutcomeCancelled
		}
		metrics.LoginAttempts.WithLabelValues(outcome).Inc()

		renderCallbackPage(ctx, http.StatusBadRequest, false)
		return
	}

	code := query.Get("code")
	if code == "" {
		failCallback(ctx, auth.ErrMissingCode)
		return
	}

	state := query.Get("state")
	if state == "" {
		failCallback(ctx, auth.ErrMissingState)
		return
	}

	cookie, err := ctx.Request.Cookie(ctx.Config.Sessions.Name)
	if err != nil || cookie.Value == "" {
		failCallback(ctx, auth.ErrCredentialNotFound)
		return
	}
	sessionID := cookie.Value

	tokens, user, role, err := authenticate(ctx, sessionID, code, state)
	if err != nil {
		failCallback(ctx, err)
		return
	}

	if ctx.Config.Sessions.Mode == config.SessionModeToken {
		err = completeTokenLogin(ctx, sessionID, user.ID, role)
	} else {
		err = completeSessionLogin(ctx, sessionID, tokens, user.ID, role)
	}
	if err != nil {
		failCallback(ctx, err)
		return
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LoginOutcomeSuccess).Inc()
	ctx.Logger.Info("user logged in", "user_id", user.ID, "role", role)

	renderCallbackPage(ctx, http.StatusOK, true)
}

// authenticate runs ValidateInit, the code exchange, both Discord lookups and role
// resolution strictly in that order, stopping at the first failure.
func authenticate(ctx *middlewares.AppContext, sessionID, code, state string) (*models.ProviderTokenSet, *models.DiscordUser, models.Role, error) {
	if err := ctx.SessionManager.ValidateInit(ctx, sessionID, state); err != nil {
		return nil, nil, "", err
	}

	tokens, err := ctx.Discord.ExchangeCode(ctx, code)
	if err != nil {
		return nil, nil, "", err
	}

	user, err := ctx.Discord.FetchSelfIdentity(ctx, tokens.AccessToken)
	if err != nil {
		return nil, nil, "", err
	}

	member, err := ctx.Discord.FetchGuildMember(ctx, tokens.AccessToken)
	if err != nil {
		return nil, nil, "", err
	}

	role, err := ctx.Roles.Resolve(member)
	if err != nil {
		return nil, nil, "", err
	}

	return tokens, user, role, nil
}

// completeSessionLogin promotes the pending record and extends the cookie to the session lifetime.
func completeSessionLogin(ctx *middlewares.AppContext, sessionID string, tokens *models.ProviderTokenSet, userID string, role models.Role) error {
	if err := ctx.SessionManager.Save(ctx, sessionID, tokens, userID, role); err != nil {
		return err
	}

	ctx.SetCookie(auth.NewSessionCookie(ctx.Config.Sessions, sessionID, ctx.Config.Sessions.Timeout))
	return nil
}

// completeTokenLogin issues the token cookies and drops the pending record, which has served its purpose.
func completeTokenLogin(ctx *middlewares.AppContext, sessionID, userID string, role models.Role) error {
	if err := setTokenCookies(ctx, userID, role); err != nil {
		return err
	}

	if err := ctx.SessionManager.Invalidate(ctx, sessionID); err != nil {
		ctx.Logger.Warn("failed to remove pending session", "error", err)
	}

	ctx.SetCookie(auth.ExpireCookie(auth.NewSessionCookie(ctx.Config.Sessions, "", 0)))
	return nil
}

func failCallback(ctx *middlewares.AppContext, err error) {
	outcome := metrics.LoginOutcomeFailed
	if errors.Is(err, auth.ErrNotMember) {
		outcome = metrics.LoginOutcomeDenied
	}
	metrics.LoginAttempts.WithLabelValues(outcome).Inc()

	status, _ := auth.StatusFor(err)
	ctx.LogError(status, err)

	renderCallbackPage(ctx, status, false)
}
