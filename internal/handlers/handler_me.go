package handlers

import (
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/middlewares"
	"net/http"
)

// GETCurrentUserHandler echoes the principal attached by the auth middleware.
func GETCurrentUserHandler(ctx *middlewares.AppContext) {
	principal := ctx.GetPrincipal()
	if principal == nil {
		ctx.WriteError(auth.ErrCredentialNotFound)
		return
	}

	ctx.WriteJSON(http.StatusOK, PrincipalResponse{
		ID:   principal.GetUserID(),
		Role: principal.GetRole(),
	})
}
