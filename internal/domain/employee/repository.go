package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
	Departments(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
