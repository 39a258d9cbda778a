package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		role       Role
		valid      bool
		canApprove bool
		canDelete  bool
	}{
		{RoleAdmin, true, true, true},
		{RoleHR, true, true, false},
		{RoleEmployee, true, false, false},
		{Role("manager"), false, false, false},
		{Role(""), false, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.role.IsValid(), "IsValid(%q)", tt.role)
		assert.Equal(t, tt.canApprove, tt.role.CanApprove(), "CanApprove(%q)", tt.role)
		assert.Equal(t, tt.canDelete, tt.role.CanDelete(), "CanDelete(%q)", tt.role)
	}
}

func TestAvatarInitials(t *testing.T) {
	assert.Equal(t, "JD", AvatarInitials("Jane Doe"))
	assert.Equal(t, "JS", AvatarInitials("Jane van der Smith"))
	assert.Equal(t, "J", AvatarInitials("Jane"))
	assert.Equal(t, "JD", AvatarInitials("  jane   doe  "))
	assert.Equal(t, "ÅB", AvatarInitials("Åsa Berg"))
	assert.Equal(t, "Ö", AvatarInitials("Östen"))
	assert.Equal(t, "", AvatarInitials("   "))
}
