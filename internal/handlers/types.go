package handlers

import (
	"elite-dashboard/internal/models"
)

// AuthorizeURLResponse carries the Discord consent URL the client should open.
type AuthorizeURLResponse struct {
	URL string `json:"url"`
}

// PrincipalResponse is the public view of the authenticated user.
type PrincipalResponse struct {
	ID   string      `json:"id"`
	Role models.Role `json:"role"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
