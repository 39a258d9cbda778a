package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
	"github.com/leavehq/leave-backend-go/internal/pkg/validator"
	"github.com/leavehq/leave-backend-go/internal/repository/postgresql"
)

// RequestService owns the leave-request lifecycle: submission with
// balance and overlap checks, cancellation by the owner, and review
// with balance settlement on approval.
type RequestService struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRequestRepository
	now func() time.Time
}

func NewRequestService(
	db *database.DB,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
) *RequestService {
	return &RequestService{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		now:                    time.Now,
	}
}

// Submit validates a new leave application and persists it in pending
// status. The balance is only checked here, never deducted; deduction
// happens at approval time.
func (s *RequestService) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	today := s.today()
	var errs validator.ValidationErrors
	if startDate.Before(today) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must not be in the past"})
	}
	if endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if len(errs) > 0 {
		return leave.LeaveRequest{}, errs
	}

	leaveType, err := s.LeaveTypeRepository.GetByCode(ctx, req.LeaveTypeCode)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveRequest{}, leave.ErrLeaveTypeInactive
	}

	days := leave.DaySpan(startDate, endDate)
	year := today.Year()

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		available := 0
		balance, err := s.LeaveBalanceRepository.Get(txCtx, req.EmployeeID, leaveType.ID, year)
		if err == nil {
			available = balance.Balance
		} else if err != leave.ErrBalanceNotFound {
			return fmt.Errorf("failed to get leave balance: %w", err)
		}

		if days > available {
			return &leave.InsufficientBalanceError{Available: available}
		}

		overlap, err := s.LeaveRequestRepository.HasOverlapping(txCtx, req.EmployeeID, startDate, endDate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping requests: %w", err)
		}
		if overlap {
			return leave.ErrOverlappingRequest
		}

		created, err = s.LeaveRequestRepository.Create(txCtx, leave.LeaveRequest{
			EmployeeID:    req.EmployeeID,
			LeaveTypeID:   leaveType.ID,
			StartDate:     startDate,
			EndDate:       endDate,
			Days:          days,
			Reason:        req.Reason,
			Status:        leave.StatusPending,
			AppliedOn:     today,
			LeaveTypeCode: leaveType.Code,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// Cancel transitions a pending request to cancelled. Only the owning
// employee may cancel, and no balance is touched because submission
// never deducted any.
func (s *RequestService) Cancel(ctx context.Context, requestID, actorID string) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.EmployeeID != actorID {
		return leave.LeaveRequest{}, leave.ErrNotRequestOwner
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, requestID, leave.StatusCancelled, nil, nil); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to cancel leave request: %w", err)
	}

	request.Status = leave.StatusCancelled
	return request, nil
}

// Review approves or rejects a pending request. On approval the balance
// row for (employee, leave type, current year) is decremented by the
// request's day count, floored at zero. A missing balance row skips the
// deduction; balances are seeded at onboarding, so a missing row is a
// data-integrity smell and gets logged rather than failed on.
func (s *RequestService) Review(ctx context.Context, req leave.ReviewRequest) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}

	status := leave.RequestStatus(req.Action)
	year := s.today().Year()

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, req.RequestID, status, &req.ReviewerID, &req.Comment); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}

		if status == leave.StatusApproved {
			touched, err := s.LeaveBalanceRepository.Decrement(txCtx, request.EmployeeID, request.LeaveTypeID, year, request.Days)
			if err != nil {
				return fmt.Errorf("failed to decrement leave balance: %w", err)
			}
			if !touched {
				slog.Warn("no balance row for approved leave request",
					"request_id", request.ID,
					"employee_id", request.EmployeeID,
					"leave_type_id", request.LeaveTypeID,
					"year", year,
				)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	request.Status = status
	request.ApprovedBy = &req.ReviewerID
	request.Comments = req.Comment
	return request, nil
}

// List returns requests matching the filter, newest first.
func (s *RequestService) List(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.List(ctx, filter)
}

func (s *RequestService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
