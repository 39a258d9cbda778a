package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/leavehq/leave-backend-go/internal/domain/holiday"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, type, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Name, h.Date, h.Type).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, err
	}

	return h, nil
}

// List implements holiday.HolidayRepository. A zero year lists all.
func (r *holidayRepositoryImpl) List(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, date, type, created_at, updated_at FROM holidays`
	var args []interface{}
	if year > 0 {
		query += ` WHERE EXTRACT(YEAR FROM date) = $1`
		args = append(args, year)
	}
	query += ` ORDER BY date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// Upcoming implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Upcoming(ctx context.Context, from time.Time, limit int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, date, type, created_at, updated_at
		FROM holidays
		WHERE date >= $1
		ORDER BY date
		LIMIT $2
	`, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}
