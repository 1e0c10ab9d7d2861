package server

import (
	"context"
	"elite-dashboard/internal/auth"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/metrics"
	"elite-dashboard/internal/middlewares"
	"elite-dashboard/internal/token"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	redis       *redis.Client
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())

	client, err := newRedisClient(ctx, cfg.Redis, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	if debugEnabled(cfg) {
		registerRedisCollector(client, logger)
		if err := metrics.RegisterBuildInfo(prometheus.DefaultRegisterer); err != nil {
			logger.Debug("failed to register build info collector: already registered", "error", err)
		}
	}

	sessionStore := auth.NewSessionStore(client, logger, cfg.Sessions, cfg.Redis.FieldExpiryEnabled())
	discordClient := auth.NewDiscordClient(cfg.Discord, logger)
	roleResolver := auth.NewRoleResolver(cfg.Discord.StaffRoleID)
	tokenService := token.NewService(cfg.JWT)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionStore, discordClient, roleResolver, tokenService)

	httpServer := newHTTPServer(fmt.Sprintf(":%d", cfg.Server.Port), setupRouter(appCtx))

	var debugServer *http.Server
	if debugEnabled(cfg) {
		debugServer = newHTTPServer(fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port), setupDebugRouter())
	}

	logger.Debug("server configured",
		"session_mode", cfg.Sessions.Mode,
		"guild_id", cfg.Discord.GuildID,
		"field_expiry", cfg.Redis.FieldExpiryEnabled())

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		redis:       client,
		cancel:      cancel,
	}, nil
}

// Start serves until SIGINT/SIGTERM or a listener failure, then shuts down gracefully.
func (s *Server) Start() error {
	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "mode", s.cfg.Sessions.Mode)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	return s.shutdown()
}

func (s *Server) shutdown() error {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")
	defer s.cancel()

	var errs []error

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		errs = append(errs, err)
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	if err := s.redis.Close(); err != nil {
		s.logger.Warn("failed to close redis client", "error", err)
	}

	s.logger.Info("Server Exited")
	return errors.Join(errs...)
}
