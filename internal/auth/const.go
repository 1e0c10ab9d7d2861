package auth

const (
	FieldCSRFToken                   = "csrf_token"
	FieldCreatedAt                   = "created_at"
	FieldUserID                      = "user_id"
	FieldUserRole                    = "user_role"
	FieldDiscordAccessToken          = "discord_access_token"
	FieldDiscordRefreshToken         = "discord_refresh_token"
	FieldDiscordAccessTokenExpiresAt = "discord_access_token_expires_at"
)

const (
	sessionKeyPrefix = "session:"

	// sessionIDBytes is the amount of entropy behind a session id before hex encoding.
	sessionIDBytes = 64
	csrfTokenBytes = 32
)

const (
	AccessTokenCookieName  = "auth-token"
	RefreshTokenCookieName = "refresh-token"
	RefreshTokenCookiePath = "/api/auth/refresh"
)
