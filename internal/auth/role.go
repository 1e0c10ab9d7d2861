package auth

import (
	"elite-dashboard/internal/models"
	"elite-dashboard/internal/utils"
)

// RoleResolver maps guild membership to an internal role. It performs no I/O.
type RoleResolver struct {
	staffRoleID string
}

func NewRoleResolver(staffRoleID string) *RoleResolver {
	return &RoleResolver{staffRoleID: staffRoleID}
}

// Resolve derives the role for a fetched guild member. A nil member is not in the guild.
func (r *RoleResolver) Resolve(member *models.GuildMember) (models.Role, error) {
	if member == nil {
		return "", ErrNotMember
	}

	if member.User != nil && member.User.Bot {
		return models.RoleBot, nil
	}

	return r.ResolveRoles(member.Roles, true)
}

// ResolveRoles is the set form of Resolve.
func (r *RoleResolver) ResolveRoles(roles []string, isMember bool) (models.Role, error) {
	if !isMember {
		return "", ErrNotMember
	}

	if r.staffRoleID != "" && utils.IsStringInSlice(r.staffRoleID, roles) {
		return models.RoleStaff, nil
	}

	return models.RoleElite, nil
}
