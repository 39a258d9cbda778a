package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for the leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByCode(ctx context.Context, code string) (LeaveType, error)
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, req UpdateLeaveTypeRequest) error
	Delete(ctx context.Context, id string) error
}

// LeaveBalanceRepository - interface for the leave_balances ledger.
// Every lookup is keyed by (employee, leave type, year); the year is
// always an explicit parameter, never taken from the wall clock here.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	Get(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	List(ctx context.Context, filter BalanceFilter) ([]LeaveBalance, error)
	// Decrement subtracts days from the balance row, floored at zero.
	// A missing row is not an error; it reports zero rows touched.
	Decrement(ctx context.Context, employeeID, leaveTypeID string, year int, days int) (bool, error)
	DeleteByLeaveType(ctx context.Context, leaveTypeID string) error
}

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus, approvedBy *string, comments *string) error
	// HasOverlapping reports whether any non-cancelled, non-rejected
	// request of the employee intersects [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	CountActiveByType(ctx context.Context, leaveTypeID string) (int, error)
	Recent(ctx context.Context, employeeID string, limit int) ([]LeaveRequest, error)
	CountOnLeave(ctx context.Context, day time.Time) (int, error)
	CountByStatus(ctx context.Context, status RequestStatus) (int, error)
	Count(ctx context.Context) (int, error)
}
