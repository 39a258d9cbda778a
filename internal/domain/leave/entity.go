package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID           string
	Code         string
	Name         string
	Color        string
	AnnualLimit  int
	CarryForward int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LeaveBalance is the remaining day count for one employee, one leave
// type and one calendar year. At most one row exists per tuple.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int
	Balance     int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join field for responses
	LeaveTypeCode string
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Reason      string
	Status      RequestStatus
	AppliedOn   time.Time
	ApprovedBy  *string
	Comments    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join field for responses
	LeaveTypeCode string
}

// DaySpan returns the inclusive day count of [start, end].
func DaySpan(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
