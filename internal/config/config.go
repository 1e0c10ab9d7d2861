package config

import (
	"elite-dashboard/internal/utils"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const minSecretLength = 32

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use --config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes raw YAML, applies environment overrides and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnvironmentOverrides(&config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvDiscordClientID       = "DASHBOARD_DISCORD_CLIENT_ID"
	EnvDiscordClientSecret   = "DASHBOARD_DISCORD_CLIENT_SECRET"
	EnvDiscordRedirectURL    = "DASHBOARD_DISCORD_REDIRECT_URL"
	EnvDiscordGuildID        = "DASHBOARD_DISCORD_GUILD_ID"
	EnvDiscordStaffRoleID    = "DASHBOARD_DISCORD_STAFF_ROLE_ID"
	EnvJWTAccessTokenSecret  = "DASHBOARD_JWT_ACCESS_TOKEN_SECRET"
	EnvJWTRefreshTokenSecret = "DASHBOARD_JWT_REFRESH_TOKEN_SECRET"
	EnvSessionsSecure        = "DASHBOARD_SESSIONS_SECURE"
	EnvSessionsTimeout       = "DASHBOARD_SESSIONS_TIMEOUT"
	EnvJWTAccessTokenExp     = "DASHBOARD_JWT_ACCESS_TOKEN_EXP"
	EnvJWTRefreshTokenExp    = "DASHBOARD_JWT_REFRESH_TOKEN_EXP"
	EnvRedisURL              = "DASHBOARD_REDIS_URL"
	EnvRedisPassword         = "DASHBOARD_REDIS_PASSWORD"
	EnvRedisUsername         = "DASHBOARD_REDIS_USERNAME"
	EnvRedisSentinelUsername = "DASHBOARD_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword = "DASHBOARD_REDIS_SENTINEL_PASSWORD"
)

func applyEnvironmentOverrides(config *Config) error {
	if clientID := os.Getenv(EnvDiscordClientID); clientID != "" {
		config.Discord.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvDiscordClientSecret); clientSecret != "" {
		config.Discord.ClientSecret = clientSecret
	}

	if redirectURL := os.Getenv(EnvDiscordRedirectURL); redirectURL != "" {
		config.Discord.RedirectURL = redirectURL
	}

	if guildID := os.Getenv(EnvDiscordGuildID); guildID != "" {
		config.Discord.GuildID = guildID
	}

	if staffRoleID := os.Getenv(EnvDiscordStaffRoleID); staffRoleID != "" {
		config.Discord.StaffRoleID = staffRoleID
	}

	if secret := os.Getenv(EnvJWTAccessTokenSecret); secret != "" {
		config.JWT.AccessTokenSecret = secret
	}

	if secret := os.Getenv(EnvJWTRefreshTokenSecret); secret != "" {
		config.JWT.RefreshTokenSecret = secret
	}

	if secure := os.Getenv(EnvSessionsSecure); secure != "" {
		if v, err := strconv.ParseBool(secure); err == nil {
			config.Sessions.Secure = v
		}
	}

	if redisURL := os.Getenv(EnvRedisURL); redisURL != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}

	durations := []struct {
		env    string
		target *time.Duration
	}{
		{EnvSessionsTimeout, &config.Sessions.Timeout},
		{EnvJWTAccessTokenExp, &config.JWT.AccessTokenExp},
		{EnvJWTRefreshTokenExp, &config.JWT.RefreshTokenExp},
	}

	for _, d := range durations {
		raw := os.Getenv(d.env)
		if raw == "" {
			continue
		}

		parsed, err := utils.ParseDurationString(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.env, err)
		}
		*d.target = parsed
	}

	return nil
}

func validateConfig(config *Config) error {

	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateDiscordConfig()
	if err != nil {
		return err
	}

	err = config.validateJWTConfig()
	if err != nil {
		return err
	}

	err = config.validateRedisConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.ExternalURL != "" {
		if err := validateURL(c.Server.ExternalURL, "server.external_url"); err != nil {
			return err
		}
		c.Server.ExternalURL = strings.TrimSuffix(c.Server.ExternalURL, "/")
	}

	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultServerConfig.RequestTimeout
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
		c.CORS.AllowCredentials = DefaultCORSConfig.AllowCredentials
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Mode == "" {
		c.Sessions.Mode = DefaultSessionConfig.Mode
	} else {
		switch c.Sessions.Mode {
		case SessionModeSession, SessionModeToken:
		default:
			return fmt.Errorf("invalid session mode: %s, options are 'session' or 'token'", c.Sessions.Mode)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.PendingTimeout == 0 {
		c.Sessions.PendingTimeout = DefaultSessionConfig.PendingTimeout
	} else if c.Sessions.PendingTimeout < time.Minute || c.Sessions.PendingTimeout > 30*time.Minute {
		return fmt.Errorf("sessions.pending_timeout must be between 1m and 30m, got %s", c.Sessions.PendingTimeout)
	}

	if c.Sessions.Timeout == 0 {
		c.Sessions.Timeout = DefaultSessionConfig.Timeout
	} else if c.Sessions.Timeout <= c.Sessions.PendingTimeout {
		return fmt.Errorf("sessions.timeout must be longer than sessions.pending_timeout")
	}

	if c.Sessions.RefreshPath == "" {
		c.Sessions.RefreshPath = DefaultSessionConfig.RefreshPath
	}

	return nil
}

func (c *Config) validateDiscordConfig() error {
	if c.Discord.ClientID == "" {
		return fmt.Errorf("discord.client_id is required")
	}

	if c.Discord.ClientSecret == "" {
		return fmt.Errorf("discord.client_secret is required")
	}

	if err := validateURL(c.Discord.RedirectURL, "discord.redirect_url"); err != nil {
		return err
	}

	if c.Discord.GuildID == "" {
		return fmt.Errorf("discord.guild_id is required")
	}

	if c.Discord.StaffRoleID == "" {
		return fmt.Errorf("discord.staff_role_id is required")
	}

	if len(c.Discord.Scopes) == 0 {
		c.Discord.Scopes = DefaultDiscordConfig.Scopes
	}

	if c.Discord.APIVersion == 0 {
		c.Discord.APIVersion = DefaultDiscordConfig.APIVersion
	} else if c.Discord.APIVersion < 6 {
		return fmt.Errorf("discord.api_version %d is no longer supported", c.Discord.APIVersion)
	}

	switch c.Discord.Prompt {
	case "", "none", "consent":
	default:
		return fmt.Errorf("invalid discord.prompt: %s, options are 'none' or 'consent'", c.Discord.Prompt)
	}

	if c.Discord.HTTPTimeout <= 0 {
		c.Discord.HTTPTimeout = DefaultDiscordConfig.HTTPTimeout
	}

	if c.Discord.APIBaseURL == "" {
		c.Discord.APIBaseURL = DefaultDiscordConfig.APIBaseURL
	} else if err := validateURL(c.Discord.APIBaseURL, "discord.api_base_url"); err != nil {
		return err
	}

	if c.Discord.AuthorizeURL == "" {
		c.Discord.AuthorizeURL = DefaultDiscordConfig.AuthorizeURL
	} else if err := validateURL(c.Discord.AuthorizeURL, "discord.authorize_url"); err != nil {
		return err
	}

	if c.Discord.TokenURL == "" {
		c.Discord.TokenURL = c.Discord.APIURL() + "/oauth2/token"
	} else if err := validateURL(c.Discord.TokenURL, "discord.token_url"); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateJWTConfig() error {
	if c.JWT.AccessTokenExp <= 0 {
		c.JWT.AccessTokenExp = DefaultJWTConfig.AccessTokenExp
	}

	if c.JWT.RefreshTokenExp <= 0 {
		c.JWT.RefreshTokenExp = DefaultJWTConfig.RefreshTokenExp
	}

	if c.JWT.RefreshTokenExp <= c.JWT.AccessTokenExp {
		return fmt.Errorf("jwt.refresh_token_exp must be longer than jwt.access_token_exp")
	}

	if c.Sessions.Mode != SessionModeToken {
		return nil
	}

	if len(c.JWT.AccessTokenSecret) < minSecretLength {
		return fmt.Errorf("jwt.access_token_secret must be at least %d characters", minSecretLength)
	}

	if len(c.JWT.RefreshTokenSecret) < minSecretLength {
		return fmt.Errorf("jwt.refresh_token_secret must be at least %d characters", minSecretLength)
	}

	if c.JWT.AccessTokenSecret == c.JWT.RefreshTokenSecret {
		return fmt.Errorf("jwt.access_token_secret and jwt.refresh_token_secret must differ")
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is required")
	}

	if c.Redis.URL != "" {
		parsed, err := url.Parse(c.Redis.URL)
		if err != nil {
			return fmt.Errorf("invalid redis url: %w", err)
		}
		if parsed.Scheme != "redis" && parsed.Scheme != "rediss" {
			return fmt.Errorf("redis url must use the redis or rediss scheme")
		}
		return nil
	}

	if c.Redis.Sentinel == nil {
		if c.Redis.Address == "" {
			return fmt.Errorf("redis address or url is required")
		}

		if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
			return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
		}
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	}
	return nil
}
