package middlewares

import (
	"context"
	"elite-dashboard/internal/models"
)

//go:generate mockgen -source=discord_provider.go -destination=../mocks/discord.go -package=mocks

type DiscordProvider interface {
	BuildAuthorizeURL() (authorizeURL string, csrfToken string, err error)
	ExchangeCode(ctx context.Context, code string) (*models.ProviderTokenSet, error)
	FetchSelfIdentity(ctx context.Context, accessToken string) (*models.DiscordUser, error)
	FetchGuildMember(ctx context.Context, accessToken string) (*models.GuildMember, error)
}

type RoleProvider interface {
	Resolve(member *models.GuildMember) (models.Role, error)
}
