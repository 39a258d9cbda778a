package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
	"github.com/leavehq/leave-backend-go/internal/repository/postgresql"
	leaveService "github.com/leavehq/leave-backend-go/internal/service/leave"
	"golang.org/x/crypto/bcrypt"
)

// Employees created without a password get this one; they are expected
// to change it on first login.
const defaultPassword = "password"

type EmployeeService struct {
	db *database.DB
	employee.EmployeeRepository
	balances *leaveService.BalanceService
	now      func() time.Time
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, balances *leaveService.BalanceService) *EmployeeService {
	return &EmployeeService{
		db:                 db,
		EmployeeRepository: employeeRepository,
		balances:           balances,
		now:                time.Now,
	}
}

func (s *EmployeeService) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx, filter)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// Create onboards an employee and seeds one balance row per active
// leave type for the current year, all in one transaction.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if req.ManagerID != nil && *req.ManagerID != "" {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if err == employee.ErrEmployeeNotFound {
				return employee.Employee{}, employee.ErrManagerNotFound
			}
			return employee.Employee{}, err
		}
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	year := s.now().Year()

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			Department:   req.Department,
			Role:         employee.Role(req.Role),
			Avatar:       employee.AvatarInitials(req.Name),
			ManagerID:    req.ManagerID,
		})
		if err != nil {
			return err
		}
		return s.balances.SeedForEmployee(txCtx, created.ID, year)
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// Update applies a partial update; a provided password is re-hashed.
func (s *EmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		req.Password = &hashed
	}

	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, req.ID)
}

// Delete removes an employee; the database cascades balances, requests
// and sessions. Deleting the acting account is refused.
func (s *EmployeeService) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return employee.ErrSelfDeletion
	}
	return s.EmployeeRepository.Delete(ctx, id)
}

func (s *EmployeeService) Departments(ctx context.Context) ([]string, error) {
	return s.EmployeeRepository.Departments(ctx)
}
