package auth

import (
	"context"
	"crypto/subtle"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/metrics"
	"elite-dashboard/internal/models"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// accessTokenMargin is subtracted from the provider access token lifetime so
// the stored copy always expires before Discord stops honouring it.
const accessTokenMargin = 5 * time.Second

const maxInitAttempts = 3

// initScript creates the pending record only when the key is free.
var initScript = redis.NewScript(`
	if redis.call("exists", KEYS[1]) == 1 then
		return 0
	end
	redis.call("hset", KEYS[1], ARGV[1], ARGV[2], ARGV[3], ARGV[4])
	redis.call("expire", KEYS[1], ARGV[5])
	return 1
`)

// SessionStore keeps pending and authenticated sessions as redis hashes under session:<id>.
type SessionStore struct {
	client      redis.Cmdable
	logger      *slog.Logger
	cfg         config.SessionConfig
	fieldExpiry bool

	now   func() time.Time
	newID func() (string, error)
}

func NewSessionStore(client redis.Cmdable, logger *slog.Logger, cfg config.SessionConfig, fieldExpiry bool) *SessionStore {
	return &SessionStore{
		client:      client,
		logger:      logger,
		cfg:         cfg,
		fieldExpiry: fieldExpiry,
		now:         time.Now,
		newID:       newSessionID,
	}
}

// Init persists a pending login bound to csrfToken and returns the new session id.
func (s *SessionStore) Init(ctx context.Context, csrfToken string) (string, error) {
	timer := prometheus.NewTimer(metrics.SessionOperationDuration.WithLabelValues(metrics.SessionOperationInit))
	defer timer.ObserveDuration()

	if csrfToken == "" {
		return "", fmt.Errorf("csrf token must not be empty")
	}

	ttl := int64(s.cfg.PendingTimeout / time.Second)

	for attempt := 1; attempt <= maxInitAttempts; attempt++ {
		sessionID, err := s.newID()
		if err != nil {
			return "", err
		}

		created, err := initScript.Run(ctx, s.client, []string{sessionKey(sessionID)},
			FieldCSRFToken, csrfToken,
			FieldCreatedAt, s.now().Unix(),
			ttl,
		).Int()
		if err != nil {
			return "", s.storeError(metrics.SessionOperationInit, err)
		}

		if created == 1 {
			return sessionID, nil
		}

		s.logger.Warn("session id collision, retrying", "attempt", attempt)
	}

	return "", fmt.Errorf("failed to allocate a unique session id after %d attempts", maxInitAttempts)
}

// ValidateInit checks the CSRF token echoed by the provider against the pending
// record and consumes it, so each pending login can be promoted only once.
func (s *SessionStore) ValidateInit(ctx context.Context, sessionID, csrfToken string) error {
	timer := prometheus.NewTimer(metrics.SessionOperationDuration.WithLabelValues(metrics.SessionOperationValidateInit))
	defer timer.ObserveDuration()

	key := sessionKey(sessionID)

	stored, err := s.client.HGet(ctx, key, FieldCSRFToken).Result()
	if errors.Is(err, redis.Nil) {
		return ErrSessionNotFound
	}
	if err != nil {
		return s.storeError(metrics.SessionOperationValidateInit, err)
	}

	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(csrfToken)) != 1 {
		return ErrSessionNotFound
	}

	deleted, err := s.client.HDel(ctx, key, FieldCSRFToken).Result()
	if err != nil {
		return s.storeError(metrics.SessionOperationValidateInit, err)
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Save promotes the record at sessionID to an authenticated session.
func (s *SessionStore) Save(ctx context.Context, sessionID string, tokens *models.ProviderTokenSet, userID string, role models.Role) error {
	timer := prometheus.NewTimer(metrics.SessionOperationDuration.WithLabelValues(metrics.SessionOperationSave))
	defer timer.ObserveDuration()

	if tokens == nil {
		return fmt.Errorf("provider tokens are required")
	}

	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	key := sessionKey(sessionID)
	accessTTL := tokens.ExpiresIn - accessTokenMargin

	values := []any{
		FieldUserID, userID,
		FieldUserRole, role.String(),
		FieldDiscordRefreshToken, tokens.RefreshToken,
	}

	storeAccessToken := accessTTL > 0 && tokens.AccessToken != ""
	if storeAccessToken {
		values = append(values,
			FieldDiscordAccessToken, tokens.AccessToken,
			FieldDiscordAccessTokenExpiresAt, s.now().Add(accessTTL).Unix(),
		)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, key, FieldCSRFToken)
		if !storeAccessToken {
			pipe.HDel(ctx, key, FieldDiscordAccessToken, FieldDiscordAccessTokenExpiresAt)
		}
		pipe.HSet(ctx, key, values...)
		if storeAccessToken && s.fieldExpiry {
			pipe.HExpire(ctx, key, accessTTL, FieldDiscordAccessToken)
		}
		pipe.Expire(ctx, key, s.cfg.Timeout)
		return nil
	})
	if err != nil {
		return s.storeError(metrics.SessionOperationSave, err)
	}

	return nil
}

// GetByID loads an authenticated session. A pending record is reported as invalid.
func (s *SessionStore) GetByID(ctx context.Context, sessionID string) (*models.Session, error) {
	timer := prometheus.NewTimer(metrics.SessionOperationDuration.WithLabelValues(metrics.SessionOperationGet))
	defer timer.ObserveDuration()

	key := sessionKey(sessionID)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, s.storeError(metrics.SessionOperationGet, err)
	}

	if exists == 0 {
		return nil, ErrSessionNotFound
	}

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, s.storeError(metrics.SessionOperationGet, err)
	}

	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	return s.decodeSession(sessionID, fields)
}

func (s *SessionStore) decodeSession(sessionID string, fields map[string]string) (*models.Session, error) {
	userID := fields[FieldUserID]
	if userID == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidSession, FieldUserID)
	}

	role, err := models.ParseRole(fields[FieldUserRole])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	refreshToken, ok := fields[FieldDiscordRefreshToken]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidSession, FieldDiscordRefreshToken)
	}

	session := &models.Session{
		ID:                  sessionID,
		UserID:              userID,
		Role:                role,
		DiscordRefreshToken: refreshToken,
	}

	if raw, ok := fields[FieldCreatedAt]; ok {
		if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
			session.CreatedAt = time.Unix(unix, 0)
		}
	}

	accessToken := fields[FieldDiscordAccessToken]
	if accessToken == "" {
		return session, nil
	}

	if raw, ok := fields[FieldDiscordAccessTokenExpiresAt]; ok {
		unix, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed %s", ErrInvalidSession, FieldDiscordAccessTokenExpiresAt)
		}

		expiresAt := time.Unix(unix, 0)
		if !s.now().Before(expiresAt) {
			return session, nil
		}
		session.AccessTokenExpiresAt = expiresAt
	}

	session.DiscordAccessToken = accessToken

	return session, nil
}

// RefreshTTL pushes the whole-record expiry out to the configured session timeout.
func (s *SessionStore) RefreshTTL(ctx context.Context, sessionID string) error {
	timer := prometheus.NewTimer(metrics.SessionOperationDuration.WithLabelValues(metrics.SessionOperationRefresh))
	defer timer.ObserveDuration()

	ok, err := s.client.Expire(ctx, sessionKey(sessionID), s.cfg.Timeout).Result()
	if err != nil {
		return s.storeError(metrics.SessionOperationRefresh, err)
	}

	if !ok {
		return ErrSessionNotFound
	}

	return nil
}

func (s *SessionStore) Invalidate(ctx context.Context, sessionID string) error {
	timer := prometheus.NewTimer(metrics.SessionOperationDuration.WithLabelValues(metrics.SessionOperationInvalidate))
	defer timer.ObserveDuration()

	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return s.storeError(metrics.SessionOperationInvalidate, err)
	}

	return nil
}

func (s *SessionStore) storeError(operation string, err error) error {
	metrics.SessionOperationErrors.WithLabelValues(operation).Inc()
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, operation, err)
}
