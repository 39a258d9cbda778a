package employee

import (
	"github.com/leavehq/leave-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password,omitempty"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	ManagerID  *string `json:"manager_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.Password != "" && len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if len(r.Department) > 50 {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not exceed 50 characters"})
	}
	if !Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of admin, hr, employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Department *string `json:"department,omitempty"`
	Role       *string `json:"role,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && (validator.IsEmpty(*r.Name) || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be 1-100 characters"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if r.Department != nil && (validator.IsEmpty(*r.Department) || len(*r.Department) > 50) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be 1-50 characters"})
	}
	if r.Role != nil && !Role(*r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of admin, hr, employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Department string
	Search     string
}

// EmployeeResponse is the wire shape of an employee record.
type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	Avatar     string  `json:"avatar"`
	ManagerID  *string `json:"manager_id"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Role:       string(e.Role),
		Avatar:     e.Avatar,
		ManagerID:  e.ManagerID,
	}
}

func ToResponseList(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
