package middlewares

import (
	"context"
	"elite-dashboard/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

type SessionProvider interface {
	Init(ctx context.Context, csrfToken string) (string, error)
	ValidateInit(ctx context.Context, sessionID, csrfToken string) error
	Save(ctx context.Context, sessionID string, tokens *models.ProviderTokenSet, userID string, role models.Role) error
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
	RefreshTTL(ctx context.Context, sessionID string) error
	Invalidate(ctx context.Context, sessionID string) error
}
