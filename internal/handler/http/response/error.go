package response

import (
	"errors"
	"net/http"

	"github.com/leavehq/leave-backend-go/internal/domain/auth"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/domain/holiday"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrSessionRevoked):
		Unauthorized(w, "Session has been revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrSelfDeletion):
		Forbidden(w, "You cannot delete your own account")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrLeaveTypeInUse):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrLeaveTypeInactive):
		UnprocessableEntity(w, "LEAVE_TYPE_INACTIVE", "Leave type is not active")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		UnprocessableEntity(w, "INSUFFICIENT_BALANCE", err.Error())
	case errors.Is(err, leave.ErrOverlappingRequest):
		UnprocessableEntity(w, "OVERLAPPING_REQUEST", "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the requester can cancel this request")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request has already been processed")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on that date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
