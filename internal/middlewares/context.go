package middlewares

import (
	"context"
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/config"
	"encoding/json"
	"log/slog"
	"net/http"
)

type AppContext struct {
	context.Context
	Config         *config.Config
	Logger         *slog.Logger
	SessionManager SessionProvider
	Discord        DiscordProvider
	Roles          RoleProvider
	Tokens         TokenProvider

	Request  *http.Request
	Response http.ResponseWriter

	principal Principal
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:        r.Context(),
				Config:         baseCtx.Config,
				Logger:         baseCtx.Logger,
				SessionManager: baseCtx.SessionManager,
				Discord:        baseCtx.Discord,
				Roles:          baseCtx.Roles,
				Tokens:         baseCtx.Tokens,
				Request:        r,
				Response:       w,
			}

			next.ServeHTTP(w, WithAppContext(r, requestCtx))
		})
	}
}

// WithAppContext returns a shallow copy of r carrying appCtx.
func WithAppContext(r *http.Request, appCtx *AppContext) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), appContextKey, appCtx))
}

type AppHandler func(*AppContext)

// Handler converts an AppHandler to an http.Handler
func (ctx *AppContext) Handler(h AppHandler) http.Handler {
	return ctx.HandlerFunc(h)
}

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, sessionManager SessionProvider, discord DiscordProvider, roles RoleProvider, tokens TokenProvider) *AppContext {
	return &AppContext{
		Context:        ctx,
		Config:         cfg,
		Logger:         logger,
		SessionManager: sessionManager,
		Discord:        discord,
		Roles:          roles,
		Tokens:         tokens,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func GetLogger(r *http.Request) *slog.Logger {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Logger
	}

	return nil
}

// SetPrincipal attaches the authenticated identity for the rest of the request.
func (ctx *AppContext) SetPrincipal(p Principal) {
	ctx.principal = p
}

func (ctx *AppContext) GetPrincipal() Principal {
	return ctx.principal
}

func (ctx *AppContext) SetCookie(cookie *http.Cookie) {
	http.SetCookie(ctx.Response, cookie)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) WriteHTML(status int, body []byte) {
	ctx.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx.Response.Header().Set("Cache-Control", "no-store")
	ctx.Response.WriteHeader(status)
	if _, err := ctx.Response.Write(body); err != nil {
		ctx.Logger.Error("failed to write html response", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}

// WriteError logs err and answers with the generic body its kind maps to.
func (ctx *AppContext) WriteError(err error) {
	status, message := auth.StatusFor(err)
	ctx.LogError(status, err)
	ctx.SetJSONError(status, message)
}

// LogError records err at a level matching the status it produced.
func (ctx *AppContext) LogError(status int, err error) {
	path := ""
	if ctx.Request != nil {
		path = ctx.Request.URL.Path
	}

	if status >= http.StatusInternalServerError {
		ctx.Logger.Error("request failed", "status", status, "path", path, "error", err)
		return
	}

	ctx.Logger.Debug("request rejected", "status", status, "path", path, "error", err)
}
