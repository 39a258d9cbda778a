package postgresql

import (
	"context"

	"github.com/leavehq/leave-backend-go/internal/domain/report"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// EmployeeReport implements report.ReportRepository. Request counters
// span all years; the balance snapshot is pinned to the given year.
func (r *reportRepositoryImpl) EmployeeReport(ctx context.Context, department string, year int) ([]report.EmployeeRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH request_totals AS (
			SELECT employee_id,
				   COUNT(*) AS total,
				   COUNT(*) FILTER (WHERE status = 'approved') AS approved,
				   COUNT(*) FILTER (WHERE status = 'pending') AS pending,
				   COUNT(*) FILTER (WHERE status = 'rejected') AS rejected,
				   COALESCE(SUM(days) FILTER (WHERE status = 'approved'), 0) AS total_days
			FROM leave_requests
			GROUP BY employee_id
		),
		balance_snapshot AS (
			SELECT lb.employee_id,
				   COALESCE(MAX(lb.balance) FILTER (WHERE lt.code = 'CL'), 0) AS balance_cl,
				   COALESCE(MAX(lb.balance) FILTER (WHERE lt.code = 'SL'), 0) AS balance_sl,
				   COALESCE(MAX(lb.balance) FILTER (WHERE lt.code = 'EL'), 0) AS balance_el
			FROM leave_balances lb
			JOIN leave_types lt ON lb.leave_type_id = lt.id
			WHERE lb.year = $2
			GROUP BY lb.employee_id
		)
		SELECT e.id, e.name, e.avatar, e.department,
			   COALESCE(rt.total, 0), COALESCE(rt.approved, 0),
			   COALESCE(rt.pending, 0), COALESCE(rt.rejected, 0),
			   COALESCE(rt.total_days, 0),
			   COALESCE(bs.balance_cl, 0), COALESCE(bs.balance_sl, 0), COALESCE(bs.balance_el, 0)
		FROM employees e
		LEFT JOIN request_totals rt ON rt.employee_id = e.id
		LEFT JOIN balance_snapshot bs ON bs.employee_id = e.id
		WHERE ($1 = '' OR e.department = $1)
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, department, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]report.EmployeeRow, 0)
	for rows.Next() {
		var row report.EmployeeRow
		if err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.Avatar, &row.Department,
			&row.Total, &row.Approved, &row.Pending, &row.Rejected, &row.TotalDays,
			&row.BalanceCL, &row.BalanceSL, &row.BalanceEL,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// DepartmentReport implements report.ReportRepository. Departments are
// the distinct observed values on employees, not a separate entity.
func (r *reportRepositoryImpl) DepartmentReport(ctx context.Context) ([]report.DepartmentRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.department,
			   COUNT(DISTINCT e.id) AS headcount,
			   COUNT(lr.id) AS total,
			   COUNT(lr.id) FILTER (WHERE lr.status = 'approved') AS approved,
			   COUNT(lr.id) FILTER (WHERE lr.status = 'pending') AS pending,
			   COALESCE(SUM(lr.days) FILTER (WHERE lr.status = 'approved'), 0) AS total_days
		FROM employees e
		LEFT JOIN leave_requests lr ON lr.employee_id = e.id
		GROUP BY e.department
		ORDER BY e.department
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]report.DepartmentRow, 0)
	for rows.Next() {
		var row report.DepartmentRow
		if err := rows.Scan(
			&row.Department, &row.Headcount, &row.Total,
			&row.Approved, &row.Pending, &row.TotalDays,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// MonthlyCounts implements report.ReportRepository.
func (r *reportRepositoryImpl) MonthlyCounts(ctx context.Context, year int) (map[int]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT EXTRACT(MONTH FROM applied_on)::int AS month, COUNT(*)
		FROM leave_requests
		WHERE EXTRACT(YEAR FROM applied_on) = $1
		GROUP BY month
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var month, count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, err
		}
		counts[month] = count
	}

	return counts, rows.Err()
}

// YearTotals implements report.ReportRepository.
func (r *reportRepositoryImpl) YearTotals(ctx context.Context, year int) (int, int, int, error) {
	q := GetQuerier(ctx, r.db)

	var total, approved, totalDays int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'approved'),
			   COALESCE(SUM(days), 0)
		FROM leave_requests
		WHERE EXTRACT(YEAR FROM applied_on) = $1
	`, year).Scan(&total, &approved, &totalDays)
	if err != nil {
		return 0, 0, 0, err
	}

	return total, approved, totalDays, nil
}
