package leave

import (
	"context"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
)

// Function-field fakes. Tests set only the calls they expect; anything
// else panics through the embedded nil interface.

type fakeTypeRepo struct {
	leave.LeaveTypeRepository
	getByID   func(ctx context.Context, id string) (leave.LeaveType, error)
	getByCode func(ctx context.Context, code string) (leave.LeaveType, error)
	create    func(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error)
	delete    func(ctx context.Context, id string) error
}

func (f *fakeTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	return f.getByID(ctx, id)
}

func (f *fakeTypeRepo) GetByCode(ctx context.Context, code string) (leave.LeaveType, error) {
	return f.getByCode(ctx, code)
}

func (f *fakeTypeRepo) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	return f.create(ctx, leaveType)
}

func (f *fakeTypeRepo) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

type fakeBalanceRepo struct {
	leave.LeaveBalanceRepository
	create            func(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error)
	get               func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error)
	decrement         func(ctx context.Context, employeeID, leaveTypeID string, year int, days int) (bool, error)
	deleteByLeaveType func(ctx context.Context, leaveTypeID string) error
}

func (f *fakeBalanceRepo) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	return f.create(ctx, balance)
}

func (f *fakeBalanceRepo) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	return f.get(ctx, employeeID, leaveTypeID, year)
}

func (f *fakeBalanceRepo) Decrement(ctx context.Context, employeeID, leaveTypeID string, year int, days int) (bool, error) {
	return f.decrement(ctx, employeeID, leaveTypeID, year, days)
}

func (f *fakeBalanceRepo) DeleteByLeaveType(ctx context.Context, leaveTypeID string) error {
	return f.deleteByLeaveType(ctx, leaveTypeID)
}

type fakeRequestRepo struct {
	leave.LeaveRequestRepository
	create            func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error)
	getByID           func(ctx context.Context, id string) (leave.LeaveRequest, error)
	updateStatus      func(ctx context.Context, id string, status leave.RequestStatus, approvedBy *string, comments *string) error
	hasOverlapping    func(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	countActiveByType func(ctx context.Context, leaveTypeID string) (int, error)
}

func (f *fakeRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return f.create(ctx, request)
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.getByID(ctx, id)
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, approvedBy *string, comments *string) error {
	return f.updateStatus(ctx, id, status, approvedBy, comments)
}

func (f *fakeRequestRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.hasOverlapping(ctx, employeeID, start, end)
}

func (f *fakeRequestRepo) CountActiveByType(ctx context.Context, leaveTypeID string) (int, error) {
	return f.countActiveByType(ctx, leaveTypeID)
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	list func(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	return f.list(ctx, filter)
}
