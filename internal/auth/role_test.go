package auth

import (
	"elite-dashboard/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleResolver_Resolve(t *testing.T) {
	resolver := NewRoleResolver("7")

	tests := []struct {
		name     string
		member   *models.GuildMember
		wantRole models.Role
		wantErr  error
	}{
		{
			name:     "staff role present",
			member:   &models.GuildMember{Roles: []string{"3", "7"}},
			wantRole: models.RoleStaff,
		},
		{
			name:     "only non staff roles",
			member:   &models.GuildMember{Roles: []string{"3"}},
			wantRole: models.RoleElite,
		},
		{
			name:     "member without roles",
			member:   &models.GuildMember{},
			wantRole: models.RoleElite,
		},
		{
			name:     "bot account",
			member:   &models.GuildMember{User: &models.DiscordUser{ID: "9", Bot: true}, Roles: []string{"7"}},
			wantRole: models.RoleBot,
		},
		{
			name:    "not in guild",
			member:  nil,
			wantErr: ErrNotMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := resolver.Resolve(tt.member)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, role)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestRoleResolver_ResolveRoles(t *testing.T) {
	resolver := NewRoleResolver("7")

	role, err := resolver.ResolveRoles([]string{"7"}, true)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStaff, role)

	role, err = resolver.ResolveRoles([]string{"1", "2"}, true)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleElite, role)

	_, err = resolver.ResolveRoles(nil, false)
	assert.ErrorIs(t, err, ErrNotMember)

	_, err = resolver.ResolveRoles([]string{"7"}, false)
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestRoleResolver_NoStaffRoleConfigured(t *testing.T) {
	role, err := NewRoleResolver("").ResolveRoles([]string{""}, true)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleElite, role)
}
