package report

import "context"

// ReportRepository - read-only projections over employees, requests and
// balances. Each call recomputes from current rows; nothing is cached.
type ReportRepository interface {
	EmployeeReport(ctx context.Context, department string, year int) ([]EmployeeRow, error)
	DepartmentReport(ctx context.Context) ([]DepartmentRow, error)
	// MonthlyCounts returns request counts keyed by submission month (1-12).
	MonthlyCounts(ctx context.Context, year int) (map[int]int, error)
	// YearTotals returns total requests, approved requests and the day sum
	// across all requests submitted in the year.
	YearTotals(ctx context.Context, year int) (total, approved, totalDays int, err error)
}
