package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/auth"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
	"github.com/leavehq/leave-backend-go/internal/pkg/jwt"
	"github.com/leavehq/leave-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	db *database.DB
	employee.EmployeeRepository
	auth.SessionRepository
	jwt.Service
	accessExpiration time.Duration
}

func NewAuthService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	sessionRepository auth.SessionRepository,
	jwtService jwt.Service,
	accessExpiration string,
) (*AuthService, error) {
	expDuration, err := time.ParseDuration(accessExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access expiration: %w", err)
	}
	return &AuthService{
		db:                 db,
		EmployeeRepository: employeeRepository,
		SessionRepository:  sessionRepository,
		Service:            jwtService,
		accessExpiration:   expDuration,
	}, nil
}

// Login checks credentials and issues a bearer token. All earlier
// sessions of the employee are revoked first, so one identity holds at
// most one live token.
func (a *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var response auth.LoginResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.SessionRepository.DeleteByEmployee(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to revoke previous sessions: %w", err)
		}

		session, err := a.SessionRepository.Create(txCtx, auth.Session{
			EmployeeID: emp.ID,
			ExpiresAt:  time.Now().Add(a.accessExpiration),
		})
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role, session.ID)
		if err != nil {
			return fmt.Errorf("failed to generate access token: %w", err)
		}

		response = auth.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			User:      employee.ToResponse(emp),
		}
		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return response, nil
}

// Logout revokes the session behind the presented token.
func (a *AuthService) Logout(ctx context.Context, sessionID string) error {
	return a.SessionRepository.Delete(ctx, sessionID)
}

// CurrentUser resolves the acting employee.
func (a *AuthService) CurrentUser(ctx context.Context, employeeID string) (employee.Employee, error) {
	return a.EmployeeRepository.GetByID(ctx, employeeID)
}
