package models

import "time"

type DiscordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
	Bot        bool   `json:"bot"`
}

type GuildMember struct {
	User     *DiscordUser `json:"user"`
	Nick     string       `json:"nick"`
	Roles    []string     `json:"roles"`
	JoinedAt time.Time    `json:"joined_at"`
}
