package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/leavehq/leave-backend-go/internal/domain/auth"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create implements auth.SessionRepository. The session ID is generated
// here and travels in the token's sid claim.
func (r *sessionRepositoryImpl) Create(ctx context.Context, session auth.Session) (auth.Session, error) {
	q := GetQuerier(ctx, r.db)

	session.ID = uuid.NewString()

	query := `
		INSERT INTO sessions (id, employee_id, created_at, expires_at)
		VALUES ($1, $2, NOW(), $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, session.ID, session.EmployeeID, session.ExpiresAt).Scan(&session.CreatedAt)
	if err != nil {
		return auth.Session{}, err
	}

	return session, nil
}

// Exists implements auth.SessionRepository. Expired rows count as gone.
func (r *sessionRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM sessions WHERE id = $1 AND expires_at > NOW())
	`, id).Scan(&exists)
	return exists, err
}

// Delete implements auth.SessionRepository.
func (r *sessionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// DeleteByEmployee implements auth.SessionRepository. Called on every
// login so one employee never holds two live tokens.
func (r *sessionRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM sessions WHERE employee_id = $1`, employeeID)
	return err
}
