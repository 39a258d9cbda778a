package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveTypeNotFound   = errors.New("leave type not found")
	ErrLeaveTypeCodeExists = errors.New("leave type code already exists")
	ErrLeaveTypeInUse      = errors.New("leave type has active requests")
	ErrLeaveTypeInactive   = errors.New("leave type is inactive")

	ErrBalanceNotFound = errors.New("leave balance not found")

	ErrRequestNotFound     = errors.New("leave request not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrOverlappingRequest  = errors.New("overlapping leave request")
	ErrNotRequestOwner     = errors.New("not the owner of this leave request")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
)

// InsufficientBalanceError carries the available day count so the caller
// sees exactly how much room is left. errors.Is matches it against
// ErrInsufficientBalance.
type InsufficientBalanceError struct {
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance. Available: %d days.", e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LeaveTypeInUseError reports how many pending or approved requests
// block the deletion. errors.Is matches it against ErrLeaveTypeInUse.
type LeaveTypeInUseError struct {
	ActiveRequests int
}

func (e *LeaveTypeInUseError) Error() string {
	return fmt.Sprintf("Cannot delete: %d active leave request(s) use this type.", e.ActiveRequests)
}

func (e *LeaveTypeInUseError) Is(target error) bool {
	return target == ErrLeaveTypeInUse
}
