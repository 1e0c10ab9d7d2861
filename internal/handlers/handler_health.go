package handlers

import (
	"elite-dashboard/internal/middlewares"
	"elite-dashboard/internal/version"
	"net/http"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, HealthResponse{Status: "OK", Version: version.GetVersion()})
}
