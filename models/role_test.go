package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role    Role
		canEdit bool
		isAdmin bool
		valid   bool
	}{
		{RoleAnonymous, false, false, false},
		{RoleMember, false, false, true},
		{RoleEditor, true, false, true},
		{RoleAdmin, true, true, true},
		{RoleSuperAdmin, true, true, true},
		{Role("owner"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.canEdit, tt.role.CanEdit())
			assert.Equal(t, tt.isAdmin, tt.role.IsAdmin())
			assert.Equal(t, tt.valid, tt.role.Valid())
		})
	}
}
