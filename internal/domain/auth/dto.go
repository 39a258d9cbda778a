package auth

import (
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token     string                    `json:"token"`
	ExpiresAt int64                     `json:"expires_at"`
	User      employee.EmployeeResponse `json:"user"`
}

// Session is one issued bearer token. An employee has at most one live
// session; a new login revokes all earlier ones.
type Session struct {
	ID         string
	EmployeeID string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}
