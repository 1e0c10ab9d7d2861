package server

import (
	"context"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/metrics"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// newRedisClient connects to the session store via url, sentinel or a plain address, in that order.
func newRedisClient(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	var client *redis.Client

	switch {
	case cfg.URL != "":
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if cfg.Username != "" {
			opts.Username = cfg.Username
		}
		if cfg.Password != "" {
			opts.Password = cfg.Password
		}
		opts.MinIdleConns = 2

		logger.Info("connecting to redis", "address", opts.Addr, "db", opts.DB, "tls", opts.TLSConfig != nil)
		client = redis.NewClient(opts)

	case cfg.Sentinel != nil:
		logger.Info("connecting to redis via sentinel",
			"master", cfg.Sentinel.MasterName,
			"sentinels", cfg.Sentinel.SentinelAddresses)

		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.Sentinel.MasterName,
			SentinelAddrs:    cfg.Sentinel.SentinelAddresses,
			SentinelUsername: cfg.Sentinel.SentinelUsername,
			SentinelPassword: cfg.Sentinel.SentinelPassword,
			Username:         cfg.Username,
			Password:         cfg.Password,
			DB:               cfg.SessionIndex,
			MinIdleConns:     2,
		})

	default:
		logger.Info("connecting to redis", "address", cfg.Address, "db", cfg.SessionIndex)

		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Address,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           cfg.SessionIndex,
			MinIdleConns: 2,
		})
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func registerRedisCollector(client *redis.Client, logger *slog.Logger) {
	collector := redisprometheus.NewCollector(metrics.Namespace, "sessions", client)
	if err := prometheus.Register(collector); err != nil {
		logger.Debug("failed to register redis session collector: already registered", "error", err)
	}
}
