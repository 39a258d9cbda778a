package dashboard

import (
	"github.com/leavehq/leave-backend-go/internal/domain/holiday"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
)

// EmployeeDashboard is the landing view for a regular employee.
type EmployeeDashboard struct {
	TotalApplied     int                       `json:"total_applied"`
	Pending          int                       `json:"pending"`
	Approved         int                       `json:"approved"`
	Balances         map[string]int            `json:"balances"`
	RecentRequests   []leave.RequestResponse   `json:"recent_requests"`
	UpcomingHolidays []holiday.HolidayResponse `json:"upcoming_holidays"`
}

// AdminDashboard is the landing view for hr and admin roles.
type AdminDashboard struct {
	TotalEmployees   int                       `json:"total_employees"`
	TotalRequests    int                       `json:"total_requests"`
	Pending          int                       `json:"pending"`
	OnLeaveToday     int                       `json:"on_leave_today"`
	RecentRequests   []leave.RequestResponse   `json:"recent_requests"`
	UpcomingHolidays []holiday.HolidayResponse `json:"upcoming_holidays"`
}
