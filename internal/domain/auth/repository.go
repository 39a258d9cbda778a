package auth

import (
	"context"
)

// SessionRepository - interface for the sessions table
type SessionRepository interface {
	Create(ctx context.Context, session Session) (Session, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
