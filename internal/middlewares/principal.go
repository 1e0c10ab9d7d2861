package middlewares

import (
	"elite-dashboard/internal/models"
)

//go:generate mockgen -source=principal.go -destination=../mocks/principal.go -package=mocks

// Principal is the identity attached to an authenticated request.
type Principal interface {
	GetUserID() string
	GetRole() models.Role
	HasRole(role models.Role) bool
}
