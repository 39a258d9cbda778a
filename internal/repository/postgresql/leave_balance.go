package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	// ON CONFLICT keeps seeding idempotent: re-introducing a leave type
	// never resets balances that already exist.
	query := `
		INSERT INTO leave_balances (id, employee_id, leave_type_id, year, balance, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID, balance.LeaveTypeID, balance.Year, balance.Balance,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Row already existed; fetch it instead.
			return r.Get(ctx, balance.EmployeeID, balance.LeaveTypeID, balance.Year)
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// Get implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.year, lb.balance, lb.created_at, lb.updated_at, lt.code
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.employee_id = $1 AND lb.leave_type_id = $2 AND lb.year = $3
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.Balance,
		&b.CreatedAt, &b.UpdatedAt, &b.LeaveTypeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return b, nil
}

// List implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) List(ctx context.Context, filter leave.BalanceFilter) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.year, lb.balance, lb.created_at, lb.updated_at, lt.code
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
	`
	args := []interface{}{filter.Year}
	conditions := []string{"lb.year = $1"}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lb.employee_id = $%d", len(args)))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf(
			"lb.employee_id IN (SELECT id FROM employees WHERE department = $%d)", len(args)))
	}

	query += " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY lb.employee_id, lt.code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.Balance,
			&b.CreatedAt, &b.UpdatedAt, &b.LeaveTypeCode,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

// Decrement implements leave.LeaveBalanceRepository. The floor at zero
// lives in SQL so the deduction is atomic with the status transition
// running in the same transaction.
func (r *leaveBalanceRepositoryImpl) Decrement(ctx context.Context, employeeID, leaveTypeID string, year int, days int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET balance = GREATEST(balance - $4, 0), updated_at = NOW()
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`

	tag, err := q.Exec(ctx, query, employeeID, leaveTypeID, year, days)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByLeaveType implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) DeleteByLeaveType(ctx context.Context, leaveTypeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM leave_balances WHERE leave_type_id = $1`, leaveTypeID)
	return err
}
