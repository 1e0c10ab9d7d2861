package middlewares

import (
	"elite-dashboard/internal/models"
	"elite-dashboard/internal/token"
)

//go:generate mockgen -source=token_provider.go -destination=../mocks/token.go -package=mocks

type TokenProvider interface {
	IssuePair(userID string, role models.Role) (*token.Pair, error)
	ValidateAccess(tokenStr string) (*token.Claims, error)
	ValidateRefresh(tokenStr string) (*token.Claims, error)
}
