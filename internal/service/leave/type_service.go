package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
	"github.com/leavehq/leave-backend-go/internal/repository/postgresql"
)

const defaultColor = "#6366f1"

// TypeService manages the leave taxonomy. Creating a type also seeds
// the ledger: one balance row per existing employee at the annual limit.
type TypeService struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewTypeService(
	db *database.DB,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
) *TypeService {
	return &TypeService{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		now:                    time.Now,
	}
}

// ListActive returns the active leave types ordered by code.
func (s *TypeService) ListActive(ctx context.Context) ([]leave.LeaveType, error) {
	return s.LeaveTypeRepository.List(ctx, true)
}

// List returns every leave type, inactive ones included.
func (s *TypeService) List(ctx context.Context) ([]leave.LeaveType, error) {
	return s.LeaveTypeRepository.List(ctx, false)
}

// Create persists a new leave type and seeds one balance row per
// existing employee for the current year.
func (s *TypeService) Create(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	color := req.Color
	if color == "" {
		color = defaultColor
	}

	year := s.now().Year()

	var created leave.LeaveType
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.LeaveTypeRepository.Create(txCtx, leave.LeaveType{
			Code:         req.Code,
			Name:         req.Name,
			Color:        color,
			AnnualLimit:  req.AnnualLimit,
			CarryForward: req.CarryForward,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		employees, err := s.EmployeeRepository.List(txCtx, employee.ListFilter{})
		if err != nil {
			return fmt.Errorf("failed to list employees for balance seeding: %w", err)
		}
		for _, emp := range employees {
			_, err := s.LeaveBalanceRepository.Create(txCtx, leave.LeaveBalance{
				EmployeeID:  emp.ID,
				LeaveTypeID: created.ID,
				Year:        year,
				Balance:     created.AnnualLimit,
			})
			if err != nil {
				return fmt.Errorf("failed to seed balance for employee %s: %w", emp.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveType{}, err
	}

	return created, nil
}

// Update applies a partial update to a leave type.
func (s *TypeService) Update(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := s.LeaveTypeRepository.Update(ctx, req); err != nil {
		return leave.LeaveType{}, err
	}
	return s.LeaveTypeRepository.GetByID(ctx, req.ID)
}

// Delete removes a leave type and its balance rows. The deletion is
// refused while any pending or approved request references the type.
func (s *TypeService) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.LeaveTypeRepository.GetByID(txCtx, id); err != nil {
			return err
		}

		active, err := s.LeaveRequestRepository.CountActiveByType(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count active requests: %w", err)
		}
		if active > 0 {
			return &leave.LeaveTypeInUseError{ActiveRequests: active}
		}

		if err := s.LeaveBalanceRepository.DeleteByLeaveType(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete balances: %w", err)
		}
		return s.LeaveTypeRepository.Delete(txCtx, id)
	})
}
