package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Log      LogConfig     `yaml:"log"`
	CORS     CORSConfig    `yaml:"cors"`
	Sessions SessionConfig `yaml:"sessions"`
	Discord  DiscordConfig `yaml:"discord"`
	JWT      JWTConfig     `yaml:"jwt"`
	Redis    *RedisConfig  `yaml:"redis"`
}

type ServerConfig struct {
	Port              int                `yaml:"port"`
	ExternalURL       string             `yaml:"external_url"`
	TrustProxyHeaders bool               `yaml:"trust_proxy_headers"`
	RequestTimeout    time.Duration      `yaml:"request_timeout"`
	CallbackPage      string             `yaml:"callback_page"`
	Debug             *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port:           8080,
	RequestTimeout: 60 * time.Second,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins:   []string{"http://localhost:5173"},
	AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders:   []string{"*"},
	AllowCredentials: true,
	MaxAgeSeconds:    300,
}

const (
	SessionModeSession = "session"
	SessionModeToken   = "token"
)

type SessionConfig struct {
	// Mode selects server-side sessions ("session") or signed cookie tokens ("token").
	Mode           string        `yaml:"mode"`
	Name           string        `yaml:"name"`
	Secure         bool          `yaml:"secure"`
	PendingTimeout time.Duration `yaml:"pending_timeout"`
	Timeout        time.Duration `yaml:"timeout"`
	// RefreshPath is the route that slides the session TTL forward.
	RefreshPath string `yaml:"refresh_path"`
}

var DefaultSessionConfig = SessionConfig{
	Mode:           SessionModeSession,
	Name:           "elite-dashboard-session-id",
	Secure:         true,
	PendingTimeout: 5 * time.Minute,
	Timeout:        30 * 24 * time.Hour,
	RefreshPath:    "/api/elites/@me",
}

type DiscordConfig struct {
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	RedirectURL  string        `yaml:"redirect_url"`
	Scopes       []string      `yaml:"scopes"`
	APIVersion   int           `yaml:"api_version"`
	GuildID      string        `yaml:"guild_id"`
	StaffRoleID  string        `yaml:"staff_role_id"`
	Prompt       string        `yaml:"prompt"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	APIBaseURL   string        `yaml:"api_base_url"`
	AuthorizeURL string        `yaml:"authorize_url"`
	TokenURL     string        `yaml:"token_url"`
}

var DefaultDiscordConfig = DiscordConfig{
	Scopes:       []string{"identify", "guilds.members.read"},
	APIVersion:   10,
	HTTPTimeout:  10 * time.Second,
	APIBaseURL:   "https://discord.com/api",
	AuthorizeURL: "https://discord.com/oauth2/authorize",
}

// APIURL is the versioned REST base, e.g. https://discord.com/api/v10.
func (d DiscordConfig) APIURL() string {
	return fmt.Sprintf("%s/v%d", strings.TrimSuffix(d.APIBaseURL, "/"), d.APIVersion)
}

type JWTConfig struct {
	AccessTokenSecret    string        `yaml:"access_token_secret"`
	RefreshTokenSecret   string        `yaml:"refresh_token_secret"`
	AccessTokenExp       time.Duration `yaml:"access_token_exp"`
	RefreshTokenExp      time.Duration `yaml:"refresh_token_exp"`
	EnforceRefreshExpiry bool          `yaml:"enforce_refresh_expiry"`
}

var DefaultJWTConfig = JWTConfig{
	AccessTokenExp:  time.Hour,
	RefreshTokenExp: 7 * 24 * time.Hour,
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	URL          string               `yaml:"url"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
	// FieldExpiry enables HEXPIRE on the provider access token field (Redis >= 7.4).
	FieldExpiry *bool `yaml:"field_expiry"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
}

func (r *RedisConfig) FieldExpiryEnabled() bool {
	return r.FieldExpiry == nil || *r.FieldExpiry
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}
