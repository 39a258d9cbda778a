package leave

import (
	"context"
	"fmt"

	"github.com/leavehq/leave-backend-go/internal/domain/leave"
)

// BalanceService is the read and seeding side of the ledger. The year
// is always explicit; callers decide which calendar year they mean.
type BalanceService struct {
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
}

func NewBalanceService(
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
) *BalanceService {
	return &BalanceService{
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
	}
}

// Snapshot returns balances grouped as {employee_id: {code: days}}.
func (s *BalanceService) Snapshot(ctx context.Context, filter leave.BalanceFilter) (map[string]map[string]int, error) {
	balances, err := s.LeaveBalanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}

	result := make(map[string]map[string]int)
	for _, b := range balances {
		if _, ok := result[b.EmployeeID]; !ok {
			result[b.EmployeeID] = make(map[string]int)
		}
		result[b.EmployeeID][b.LeaveTypeCode] = b.Balance
	}

	return result, nil
}

// SeedForEmployee creates one balance row per active leave type for the
// given year, each seeded at the type's annual limit. Used when an
// employee is onboarded.
func (s *BalanceService) SeedForEmployee(ctx context.Context, employeeID string, year int) error {
	types, err := s.LeaveTypeRepository.List(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to list active leave types: %w", err)
	}

	for _, t := range types {
		_, err := s.LeaveBalanceRepository.Create(ctx, leave.LeaveBalance{
			EmployeeID:  employeeID,
			LeaveTypeID: t.ID,
			Year:        year,
			Balance:     t.AnnualLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to seed balance for leave type %s: %w", t.Code, err)
		}
	}

	return nil
}
