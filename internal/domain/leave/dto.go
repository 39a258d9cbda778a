package leave

import (
	"strings"

	"github.com/leavehq/leave-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type CreateLeaveTypeRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Color        string `json:"color,omitempty"`
	AnnualLimit  int    `json:"annual_limit"`
	CarryForward int    `json:"carry_forward,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	if !validator.IsValidLeaveCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be 1-10 uppercase letters"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if r.Color != "" && !validator.IsValidHexColor(r.Color) {
		errs = append(errs, validator.ValidationError{Field: "color", Message: "color must be a hex value like #6366f1"})
	}
	if r.AnnualLimit < 1 {
		errs = append(errs, validator.ValidationError{Field: "annual_limit", Message: "annual_limit must be at least 1"})
	}
	if r.CarryForward < 0 {
		errs = append(errs, validator.ValidationError{Field: "carry_forward", Message: "carry_forward must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Color        *string `json:"color,omitempty"`
	AnnualLimit  *int    `json:"annual_limit,omitempty"`
	CarryForward *int    `json:"carry_forward,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && (validator.IsEmpty(*r.Name) || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be 1-100 characters"})
	}
	if r.Color != nil && !validator.IsValidHexColor(*r.Color) {
		errs = append(errs, validator.ValidationError{Field: "color", Message: "color must be a hex value like #6366f1"})
	}
	if r.AnnualLimit != nil && *r.AnnualLimit < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_limit", Message: "annual_limit must not be negative"})
	}
	if r.CarryForward != nil && *r.CarryForward < 0 {
		errs = append(errs, validator.ValidationError{Field: "carry_forward", Message: "carry_forward must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitRequest struct {
	EmployeeID    string `json:"-"`
	LeaveTypeCode string `json:"leave_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeCode) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	RequestID  string `json:"-"`
	ReviewerID string `json:"-"`
	Action     string `json:"action"`
	Comment    string `json:"comment,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{string(DecisionApproved), string(DecisionRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action must be approved or rejected"})
	}
	if len(r.Comment) > 500 {
		errs = append(errs, validator.ValidationError{Field: "comment", Message: "comment must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestFilter struct {
	EmployeeID string
	Status     string
}

type BalanceFilter struct {
	EmployeeID string
	Department string
	Year       int
}

// LeaveTypeResponse is the wire shape of a leave type.
type LeaveTypeResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	AnnualLimit  int    `json:"annual_limit"`
	CarryForward int    `json:"carry_forward"`
	IsActive     bool   `json:"is_active"`
}

func ToLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:           t.ID,
		Code:         t.Code,
		Name:         t.Name,
		Color:        t.Color,
		AnnualLimit:  t.AnnualLimit,
		CarryForward: t.CarryForward,
		IsActive:     t.IsActive,
	}
}

// RequestResponse is the wire shape of a leave request.
type RequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Days       int     `json:"days"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	AppliedOn  string  `json:"applied_on"`
	ApprovedBy *string `json:"approved_by"`
	Comments   string  `json:"comments"`
}

func ToRequestResponse(r LeaveRequest) RequestResponse {
	return RequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveTypeCode,
		StartDate:  r.StartDate.Format(dateLayout),
		EndDate:    r.EndDate.Format(dateLayout),
		Days:       r.Days,
		Reason:     r.Reason,
		Status:     string(r.Status),
		AppliedOn:  r.AppliedOn.Format(dateLayout),
		ApprovedBy: r.ApprovedBy,
		Comments:   r.Comments,
	}
}

func ToRequestResponseList(requests []LeaveRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToRequestResponse(r))
	}
	return out
}
