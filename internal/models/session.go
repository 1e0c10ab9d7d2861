package models

import "time"

// Session is an authenticated server-side session as read back from the store.
type Session struct {
	ID                   string    `json:"-"`
	UserID               string    `json:"id"`
	Role                 Role      `json:"role"`
	DiscordAccessToken   string    `json:"-"`
	DiscordRefreshToken  string    `json:"-"`
	AccessTokenExpiresAt time.Time `json:"-"`
	CreatedAt            time.Time `json:"-"`
}

// HasAccessToken reports whether the provider access token is still usable.
func (s *Session) HasAccessToken() bool {
	return s.DiscordAccessToken != ""
}

func (s *Session) GetUserID() string {
	return s.UserID
}

func (s *Session) GetRole() Role {
	return s.Role
}

func (s *Session) HasRole(role Role) bool {
	return s.Role == role
}

// ProviderTokenSet is the result of a successful authorization code exchange.
type ProviderTokenSet struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	ExpiresIn    time.Duration
}
