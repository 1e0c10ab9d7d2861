package server

import (
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/handlers"
	"elite-dashboard/internal/middlewares"
	"elite-dashboard/internal/models"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware(ctx.Config.Server.TrustProxyHeaders))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(ctx.Config.Server.RequestTimeout))

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/discord", ctx.HandlerFunc(handlers.GETDiscordLoginHandler))
			r.Get("/discord/oauth-url", ctx.HandlerFunc(handlers.GETDiscordLoginHandler))
			r.Get("/discord/callback", ctx.HandlerFunc(handlers.GETDiscordCallbackHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))

			if ctx.Config.Sessions.Mode == config.SessionModeToken {
				r.Post("/refresh", ctx.HandlerFunc(handlers.POSTRefreshHandler))
			}
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth)
			r.Get("/elites/@me", ctx.HandlerFunc(handlers.GETCurrentUserHandler))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireRole(models.RoleStaff))
				r.Get("/staff/@me", ctx.HandlerFunc(handlers.GETCurrentUserHandler))
			})
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}

func debugEnabled(cfg *config.Config) bool {
	return cfg.Server.Debug != nil && cfg.Server.Debug.Enabled
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
