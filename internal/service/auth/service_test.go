package auth

import (
	"context"
	"testing"

	"github.com/leavehq/leave-backend-go/internal/domain/auth"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	getByEmail func(ctx context.Context, email string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return f.getByEmail(ctx, email)
}

type fakeSessionRepo struct {
	auth.SessionRepository
	create           func(ctx context.Context, session auth.Session) (auth.Session, error)
	delete           func(ctx context.Context, id string) error
	deleteByEmployee func(ctx context.Context, employeeID string) error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session auth.Session) (auth.Session, error) {
	return f.create(ctx, session)
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

func (f *fakeSessionRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return f.deleteByEmployee(ctx, employeeID)
}

func testEmployee(t *testing.T) employee.Employee {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	return employee.Employee{
		ID:           "emp-1",
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         employee.RoleHR,
	}
}

func TestLoginRevokesPreviousSessions(t *testing.T) {
	emp := testEmployee(t)

	var revokedEmployee string
	sessions := &fakeSessionRepo{
		deleteByEmployee: func(ctx context.Context, employeeID string) error {
			revokedEmployee = employeeID
			return nil
		},
		create: func(ctx context.Context, session auth.Session) (auth.Session, error) {
			assert.Equal(t, "emp-1", session.EmployeeID)
			session.ID = "sid-new"
			return session, nil
		},
	}
	employees := &fakeEmployeeRepo{
		getByEmail: func(ctx context.Context, email string) (employee.Employee, error) {
			return emp, nil
		},
	}

	service, err := NewAuthService(nil, employees, sessions, jwt.NewJWTService("test-secret", "1h"), "1h")
	require.NoError(t, err)

	result, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", revokedEmployee)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "jane@example.com", result.User.Email)

	token, err := jwt.NewJWTService("test-secret", "1h").JWTAuth().Decode(result.Token)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sid-new", claims["sid"])
}

func TestLoginWrongPassword(t *testing.T) {
	emp := testEmployee(t)
	employees := &fakeEmployeeRepo{
		getByEmail: func(ctx context.Context, email string) (employee.Employee, error) {
			return emp, nil
		},
	}

	service, err := NewAuthService(nil, employees, &fakeSessionRepo{}, jwt.NewJWTService("test-secret", "1h"), "1h")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	employees := &fakeEmployeeRepo{
		getByEmail: func(ctx context.Context, email string) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		},
	}

	service, err := NewAuthService(nil, employees, &fakeSessionRepo{}, jwt.NewJWTService("test-secret", "1h"), "1h")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogoutDeletesSession(t *testing.T) {
	var deleted string
	sessions := &fakeSessionRepo{
		delete: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	service, err := NewAuthService(nil, &fakeEmployeeRepo{}, sessions, jwt.NewJWTService("test-secret", "1h"), "1h")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), "sid-1"))
	assert.Equal(t, "sid-1", deleted)
}

func TestNewAuthServiceInvalidExpiration(t *testing.T) {
	_, err := NewAuthService(nil, &fakeEmployeeRepo{}, &fakeSessionRepo{}, jwt.NewJWTService("test-secret", "1h"), "twelve hours")
	assert.Error(t, err)
}
