package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.days,
	lr.reason, lr.status, lr.applied_on, lr.approved_by, lr.comments,
	lr.created_at, lr.updated_at, lt.code`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.Days,
		&lr.Reason, &lr.Status, &lr.AppliedOn, &lr.ApprovedBy, &lr.Comments,
		&lr.CreatedAt, &lr.UpdatedAt, &lr.LeaveTypeCode,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, start_date, end_date, days,
			reason, status, applied_on, comments, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, '', NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID, request.StartDate, request.EndDate, request.Days,
		request.Reason, request.Status, request.AppliedOn,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
	`
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.applied_on DESC, lr.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, approvedBy *string, comments *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
			approved_by = COALESCE($3, approved_by),
			comments = COALESCE($4, comments),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, approvedBy, comments)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

// HasOverlapping implements leave.LeaveRequestRepository using the
// closed-interval intersection test: existing.start <= newEnd AND
// existing.end >= newStart.
func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status NOT IN ('cancelled', 'rejected')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists)
	return exists, err
}

// CountActiveByType implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountActiveByType(ctx context.Context, leaveTypeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM leave_requests
		WHERE leave_type_id = $1 AND status IN ('pending', 'approved')
	`, leaveTypeID).Scan(&count)
	return count, err
}

// Recent implements leave.LeaveRequestRepository. An empty employeeID
// returns the most recent requests across all employees.
func (r *leaveRequestRepositoryImpl) Recent(ctx context.Context, employeeID string, limit int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
	`
	args := []interface{}{limit}
	if employeeID != "" {
		args = append(args, employeeID)
		query += " WHERE lr.employee_id = $2"
	}
	query += " ORDER BY lr.applied_on DESC, lr.id DESC LIMIT $1"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

// CountOnLeave implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountOnLeave(ctx context.Context, day time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM leave_requests
		WHERE status = 'approved' AND start_date <= $1 AND end_date >= $1
	`, day).Scan(&count)
	return count, err
}

// CountByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, status leave.RequestStatus) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}

// Count implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests`).Scan(&count)
	return count, err
}
