package leave

import (
	"context"
	"testing"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed clock for every request test: Monday 2026-03-02.
var testNow = time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

func newRequestService(types *fakeTypeRepo, balances *fakeBalanceRepo, requests *fakeRequestRepo) *RequestService {
	s := NewRequestService(nil, types, balances, requests)
	s.now = func() time.Time { return testNow }
	return s
}

func activeType() leave.LeaveType {
	return leave.LeaveType{ID: "lt-1", Code: "CL", Name: "Casual Leave", AnnualLimit: 12, IsActive: true}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	ctx := context.Background()

	var createdArg leave.LeaveRequest
	types := &fakeTypeRepo{
		getByCode: func(ctx context.Context, code string) (leave.LeaveType, error) {
			assert.Equal(t, "CL", code)
			return activeType(), nil
		},
	}
	balances := &fakeBalanceRepo{
		get: func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
			assert.Equal(t, 2026, year)
			return leave.LeaveBalance{Balance: 10}, nil
		},
	}
	requests := &fakeRequestRepo{
		hasOverlapping: func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
			return false, nil
		},
		create: func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
			createdArg = request
			request.ID = "req-1"
			return request, nil
		},
	}

	s := newRequestService(types, balances, requests)
	created, err := s.Submit(ctx, leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-12",
		Reason:        "family event",
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", created.ID)
	assert.Equal(t, leave.StatusPending, createdArg.Status)
	assert.Equal(t, 3, createdArg.Days)
	assert.Equal(t, "emp-1", createdArg.EmployeeID)
	assert.Equal(t, "lt-1", createdArg.LeaveTypeID)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), createdArg.AppliedOn)
}

func TestSubmitSingleDayCountsOne(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{
		getByCode: func(ctx context.Context, code string) (leave.LeaveType, error) {
			return activeType(), nil
		},
	}
	balances := &fakeBalanceRepo{
		get: func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{Balance: 1}, nil
		},
	}
	requests := &fakeRequestRepo{
		hasOverlapping: func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
			return false, nil
		},
		create: func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
			return request, nil
		},
	}

	s := newRequestService(types, balances, requests)
	created, err := s.Submit(ctx, leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-10",
		Reason:        "appointment",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.Days)
}

func TestSubmitRejectsInsufficientBalance(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{
		getByCode: func(ctx context.Context, code string) (leave.LeaveType, error) {
			return activeType(), nil
		},
	}
	balances := &fakeBalanceRepo{
		get: func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{Balance: 2}, nil
		},
	}
	requests := &fakeRequestRepo{
		create: func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
			t.Fatal("no request should be created")
			return leave.LeaveRequest{}, nil
		},
	}

	s := newRequestService(types, balances, requests)
	_, err := s.Submit(ctx, leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-12",
		Reason:        "trip",
	})

	require.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.EqualError(t, err, "Insufficient balance. Available: 2 days.")
}

func TestSubmitTreatsMissingBalanceAsZero(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{
		getByCode: func(ctx context.Context, code string) (leave.LeaveType, error) {
			return activeType(), nil
		},
	}
	balances := &fakeBalanceRepo{
		get: func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		},
	}
	requests := &fakeRequestRepo{}

	s := newRequestService(types, balances, requests)
	_, err := s.Submit(ctx, leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-10",
		Reason:        "appointment",
	})

	require.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.EqualError(t, err, "Insufficient balance. Available: 0 days.")
}

func TestSubmitRejectsOverlap(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{
		getByCode: func(ctx context.Context, code string) (leave.LeaveType, error) {
			return activeType(), nil
		},
	}
	balances := &fakeBalanceRepo{
		get: func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{Balance: 10}, nil
		},
	}
	requests := &fakeRequestRepo{
		hasOverlapping: func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
			return true, nil
		},
	}

	s := newRequestService(types, balances, requests)
	_, err := s.Submit(ctx, leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-12",
		Reason:        "trip",
	})

	require.ErrorIs(t, err, leave.ErrOverlappingRequest)
}

func TestSubmitRejectsPastStartDate(t *testing.T) {
	s := newRequestService(&fakeTypeRepo{}, &fakeBalanceRepo{}, &fakeRequestRepo{})

	_, err := s.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-01",
		EndDate:       "2026-03-03",
		Reason:        "late filing",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "start_date")
}

func TestSubmitRejectsEndBeforeStart(t *testing.T) {
	s := newRequestService(&fakeTypeRepo{}, &fakeBalanceRepo{}, &fakeRequestRepo{})

	_, err := s.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-12",
		EndDate:       "2026-03-10",
		Reason:        "typo",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestSubmitAllowsStartToday(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{
		getByCode: func(ctx context.Context, code string) (leave.LeaveType, error) {
			return activeType(), nil
		},
	}
	balances := &fakeBalanceRepo{
		get: func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{Balance: 5}, nil
		},
	}
	requests := &fakeRequestRepo{
		hasOverlapping: func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
			return false, nil
		},
		create: func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
			return request, nil
		},
	}

	s := newRequestService(types, balances, requests)
	_, err := s.Submit(ctx, leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-02",
		Reason:        "sudden illness",
	})

	require.NoError(t, err)
}

func TestSubmitRejectsInactiveType(t *testing.T) {
	types := &fakeTypeRepo{
		getByCode: func(ctx context.Context, code string) (leave.LeaveType, error) {
			lt := activeType()
			lt.IsActive = false
			return lt, nil
		},
	}

	s := newRequestService(types, &fakeBalanceRepo{}, &fakeRequestRepo{})
	_, err := s.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID:    "emp-1",
		LeaveTypeCode: "CL",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-10",
		Reason:        "trip",
	})

	require.ErrorIs(t, err, leave.ErrLeaveTypeInactive)
}

func TestCancelByOwner(t *testing.T) {
	var cancelled bool
	requests := &fakeRequestRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, EmployeeID: "emp-1", Status: leave.StatusPending}, nil
		},
		updateStatus: func(ctx context.Context, id string, status leave.RequestStatus, approvedBy *string, comments *string) error {
			cancelled = true
			assert.Equal(t, leave.StatusCancelled, status)
			assert.Nil(t, approvedBy)
			return nil
		},
	}

	s := newRequestService(&fakeTypeRepo{}, &fakeBalanceRepo{}, requests)
	request, err := s.Cancel(context.Background(), "req-1", "emp-1")

	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, leave.StatusCancelled, request.Status)
}

func TestCancelByNonOwnerFails(t *testing.T) {
	requests := &fakeRequestRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, EmployeeID: "emp-1", Status: leave.StatusPending}, nil
		},
	}

	s := newRequestService(&fakeTypeRepo{}, &fakeBalanceRepo{}, requests)
	_, err := s.Cancel(context.Background(), "req-1", "emp-2")

	require.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestCancelNonPendingFails(t *testing.T) {
	for _, status := range []leave.RequestStatus{leave.StatusApproved, leave.StatusRejected, leave.StatusCancelled} {
		requests := &fakeRequestRepo{
			getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
				return leave.LeaveRequest{ID: id, EmployeeID: "emp-1", Status: status}, nil
			},
		}

		s := newRequestService(&fakeTypeRepo{}, &fakeBalanceRepo{}, requests)
		_, err := s.Cancel(context.Background(), "req-1", "emp-1")

		require.ErrorIs(t, err, leave.ErrAlreadyProcessed, "status %s", status)
	}
}

func TestReviewApproveDeductsBalance(t *testing.T) {
	var decremented bool
	requests := &fakeRequestRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, EmployeeID: "emp-1", LeaveTypeID: "lt-1", Days: 3, Status: leave.StatusPending}, nil
		},
		updateStatus: func(ctx context.Context, id string, status leave.RequestStatus, approvedBy *string, comments *string) error {
			assert.Equal(t, leave.StatusApproved, status)
			require.NotNil(t, approvedBy)
			assert.Equal(t, "hr-1", *approvedBy)
			return nil
		},
	}
	balances := &fakeBalanceRepo{
		decrement: func(ctx context.Context, employeeID, leaveTypeID string, year int, days int) (bool, error) {
			decremented = true
			assert.Equal(t, "emp-1", employeeID)
			assert.Equal(t, "lt-1", leaveTypeID)
			assert.Equal(t, 2026, year)
			assert.Equal(t, 3, days)
			return true, nil
		},
	}

	s := newRequestService(&fakeTypeRepo{}, balances, requests)
	reviewed, err := s.Review(context.Background(), leave.ReviewRequest{
		RequestID:  "req-1",
		ReviewerID: "hr-1",
		Action:     "approved",
		Comment:    "enjoy",
	})

	require.NoError(t, err)
	assert.True(t, decremented)
	assert.Equal(t, leave.StatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ApprovedBy)
	assert.Equal(t, "hr-1", *reviewed.ApprovedBy)
	assert.Equal(t, "enjoy", reviewed.Comments)
}

func TestReviewRejectLeavesBalanceAlone(t *testing.T) {
	requests := &fakeRequestRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, EmployeeID: "emp-1", LeaveTypeID: "lt-1", Days: 3, Status: leave.StatusPending}, nil
		},
		updateStatus: func(ctx context.Context, id string, status leave.RequestStatus, approvedBy *string, comments *string) error {
			assert.Equal(t, leave.StatusRejected, status)
			return nil
		},
	}
	balances := &fakeBalanceRepo{
		decrement: func(ctx context.Context, employeeID, leaveTypeID string, year int, days int) (bool, error) {
			t.Fatal("rejection must not touch the balance")
			return false, nil
		},
	}

	s := newRequestService(&fakeTypeRepo{}, balances, requests)
	reviewed, err := s.Review(context.Background(), leave.ReviewRequest{
		RequestID:  "req-1",
		ReviewerID: "hr-1",
		Action:     "rejected",
		Comment:    "short staffed",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, reviewed.Status)
}

func TestReviewProcessedRequestFails(t *testing.T) {
	requests := &fakeRequestRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, Status: leave.StatusApproved}, nil
		},
	}

	s := newRequestService(&fakeTypeRepo{}, &fakeBalanceRepo{}, requests)
	_, err := s.Review(context.Background(), leave.ReviewRequest{
		RequestID:  "req-1",
		ReviewerID: "hr-1",
		Action:     "rejected",
	})

	require.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestReviewApproveWithMissingBalanceRowStillApproves(t *testing.T) {
	requests := &fakeRequestRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, EmployeeID: "emp-1", LeaveTypeID: "lt-1", Days: 2, Status: leave.StatusPending}, nil
		},
		updateStatus: func(ctx context.Context, id string, status leave.RequestStatus, approvedBy *string, comments *string) error {
			return nil
		},
	}
	balances := &fakeBalanceRepo{
		decrement: func(ctx context.Context, employeeID, leaveTypeID string, year int, days int) (bool, error) {
			return false, nil
		},
	}

	s := newRequestService(&fakeTypeRepo{}, balances, requests)
	reviewed, err := s.Review(context.Background(), leave.ReviewRequest{
		RequestID:  "req-1",
		ReviewerID: "hr-1",
		Action:     "approved",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, reviewed.Status)
}
