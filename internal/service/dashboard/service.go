package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/dashboard"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/domain/holiday"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
)

const (
	recentRequestLimit   = 5
	upcomingHolidayLimit = 3
)

type DashboardService struct {
	employee.EmployeeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRequestRepository
	holiday.HolidayRepository
	now func() time.Time
}

func NewDashboardService(
	employeeRepository employee.EmployeeRepository,
	balanceRepository leave.LeaveBalanceRepository,
	requestRepository leave.LeaveRequestRepository,
	holidayRepository holiday.HolidayRepository,
) *DashboardService {
	return &DashboardService{
		EmployeeRepository:     employeeRepository,
		LeaveBalanceRepository: balanceRepository,
		LeaveRequestRepository: requestRepository,
		HolidayRepository:      holidayRepository,
		now:                    time.Now,
	}
}

// ForEmployee builds the landing view for a regular employee: own
// request totals, current-year balances, recent requests and the next
// few holidays.
func (s *DashboardService) ForEmployee(ctx context.Context, employeeID string) (dashboard.EmployeeDashboard, error) {
	today := s.today()

	requests, err := s.LeaveRequestRepository.List(ctx, leave.RequestFilter{EmployeeID: employeeID})
	if err != nil {
		return dashboard.EmployeeDashboard{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	view := dashboard.EmployeeDashboard{
		TotalApplied: len(requests),
		Balances:     make(map[string]int),
	}
	for _, r := range requests {
		switch r.Status {
		case leave.StatusPending:
			view.Pending++
		case leave.StatusApproved:
			view.Approved++
		}
	}

	balances, err := s.LeaveBalanceRepository.List(ctx, leave.BalanceFilter{
		EmployeeID: employeeID,
		Year:       today.Year(),
	})
	if err != nil {
		return dashboard.EmployeeDashboard{}, fmt.Errorf("failed to list leave balances: %w", err)
	}
	for _, b := range balances {
		view.Balances[b.LeaveTypeCode] = b.Balance
	}

	recent, err := s.LeaveRequestRepository.Recent(ctx, employeeID, recentRequestLimit)
	if err != nil {
		return dashboard.EmployeeDashboard{}, fmt.Errorf("failed to list recent requests: %w", err)
	}
	view.RecentRequests = leave.ToRequestResponseList(recent)

	upcoming, err := s.HolidayRepository.Upcoming(ctx, today, upcomingHolidayLimit)
	if err != nil {
		return dashboard.EmployeeDashboard{}, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}
	view.UpcomingHolidays = holiday.ToResponseList(upcoming)

	return view, nil
}

// ForAdmin builds the landing view for hr and admin roles.
func (s *DashboardService) ForAdmin(ctx context.Context) (dashboard.AdminDashboard, error) {
	today := s.today()

	headcount, err := s.EmployeeRepository.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboard{}, fmt.Errorf("failed to count employees: %w", err)
	}

	total, err := s.LeaveRequestRepository.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboard{}, fmt.Errorf("failed to count leave requests: %w", err)
	}

	pending, err := s.LeaveRequestRepository.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		return dashboard.AdminDashboard{}, fmt.Errorf("failed to count pending requests: %w", err)
	}

	onLeave, err := s.LeaveRequestRepository.CountOnLeave(ctx, today)
	if err != nil {
		return dashboard.AdminDashboard{}, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	recent, err := s.LeaveRequestRepository.Recent(ctx, "", recentRequestLimit)
	if err != nil {
		return dashboard.AdminDashboard{}, fmt.Errorf("failed to list recent requests: %w", err)
	}

	upcoming, err := s.HolidayRepository.Upcoming(ctx, today, upcomingHolidayLimit)
	if err != nil {
		return dashboard.AdminDashboard{}, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}

	return dashboard.AdminDashboard{
		TotalEmployees:   headcount,
		TotalRequests:    total,
		Pending:          pending,
		OnLeaveToday:     onLeave,
		RecentRequests:   leave.ToRequestResponseList(recent),
		UpcomingHolidays: holiday.ToResponseList(upcoming),
	}, nil
}

func (s *DashboardService) today() time.Time {
	t := s.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
