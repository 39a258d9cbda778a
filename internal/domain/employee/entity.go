package employee

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleEmployee
}

// CanApprove reports whether the role may review leave requests and
// manage records across employees.
func (r Role) CanApprove() bool {
	return r == RoleAdmin || r == RoleHR
}

// CanDelete reports whether the role may delete employees and leave types.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Department   string
	Role         Role
	Avatar       string
	ManagerID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AvatarInitials derives the avatar tag from a display name: first letter
// of the first word plus first letter of the last word, uppercased.
func AvatarInitials(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return ""
	}
	avatar := strings.ToUpper(string([]rune(parts[0])[:1]))
	if len(parts) > 1 {
		avatar += strings.ToUpper(string([]rune(parts[len(parts)-1])[:1]))
	}
	return avatar
}
