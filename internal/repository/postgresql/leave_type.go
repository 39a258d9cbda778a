package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `id, code, name, color, annual_limit, carry_forward, is_active, created_at, updated_at`

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var t leave.LeaveType
	err := row.Scan(
		&t.ID, &t.Code, &t.Name, &t.Color, &t.AnnualLimit,
		&t.CarryForward, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, code, name, color, annual_limit, carry_forward, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		leaveType.Code, leaveType.Name, leaveType.Color,
		leaveType.AnnualLimit, leaveType.CarryForward, leaveType.IsActive,
	).Scan(&leaveType.ID, &leaveType.CreatedAt, &leaveType.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanLeaveType(q.QueryRow(ctx, `SELECT `+leaveTypeColumns+` FROM leave_types WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return t, nil
}

// GetByCode implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByCode(ctx context.Context, code string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanLeaveType(q.QueryRow(ctx, `SELECT `+leaveTypeColumns+` FROM leave_types WHERE code = $1`, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return t, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]leave.LeaveType, 0)
	for rows.Next() {
		t, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// Update implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, req leave.UpdateLeaveTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.AnnualLimit != nil {
		updates["annual_limit"] = *req.AnnualLimit
	}
	if req.CarryForward != nil {
		updates["carry_forward"] = *req.CarryForward
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	args = append(args, req.ID)

	sql := "UPDATE leave_types SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

// Delete implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}
