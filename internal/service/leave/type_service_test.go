package leave

import (
	"context"
	"testing"
	"time"

	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTypeService(types *fakeTypeRepo, balances *fakeBalanceRepo, requests *fakeRequestRepo, employees *fakeEmployeeRepo) *TypeService {
	s := NewTypeService(nil, types, balances, requests, employees)
	s.now = func() time.Time { return testNow }
	return s
}

func TestCreateTypeSeedsBalances(t *testing.T) {
	seeded := make(map[string]int)
	types := &fakeTypeRepo{
		create: func(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
			assert.True(t, leaveType.IsActive)
			assert.Equal(t, defaultColor, leaveType.Color)
			leaveType.ID = "lt-1"
			return leaveType, nil
		},
	}
	balances := &fakeBalanceRepo{
		create: func(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
			assert.Equal(t, "lt-1", balance.LeaveTypeID)
			assert.Equal(t, 2026, balance.Year)
			seeded[balance.EmployeeID] = balance.Balance
			return balance, nil
		},
	}
	employees := &fakeEmployeeRepo{
		list: func(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
			return []employee.Employee{{ID: "emp-1"}, {ID: "emp-2"}}, nil
		},
	}

	s := newTypeService(types, balances, &fakeRequestRepo{}, employees)
	created, err := s.Create(context.Background(), leave.CreateLeaveTypeRequest{
		Code:        "EL",
		Name:        "Earned Leave",
		AnnualLimit: 15,
	})

	require.NoError(t, err)
	assert.Equal(t, "lt-1", created.ID)
	assert.Equal(t, map[string]int{"emp-1": 15, "emp-2": 15}, seeded)
}

func TestDeleteTypeRefusedWhileInUse(t *testing.T) {
	types := &fakeTypeRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveType, error) {
			return activeType(), nil
		},
	}
	requests := &fakeRequestRepo{
		countActiveByType: func(ctx context.Context, leaveTypeID string) (int, error) {
			return 4, nil
		},
	}
	balances := &fakeBalanceRepo{
		deleteByLeaveType: func(ctx context.Context, leaveTypeID string) error {
			t.Fatal("balances must not be deleted while the type is in use")
			return nil
		},
	}

	s := newTypeService(types, balances, requests, &fakeEmployeeRepo{})
	err := s.Delete(context.Background(), "lt-1")

	require.ErrorIs(t, err, leave.ErrLeaveTypeInUse)
	assert.EqualError(t, err, "Cannot delete: 4 active leave request(s) use this type.")
}

func TestDeleteTypeRemovesBalances(t *testing.T) {
	var balancesDeleted, typeDeleted bool
	types := &fakeTypeRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveType, error) {
			return activeType(), nil
		},
		delete: func(ctx context.Context, id string) error {
			typeDeleted = true
			return nil
		},
	}
	requests := &fakeRequestRepo{
		countActiveByType: func(ctx context.Context, leaveTypeID string) (int, error) {
			return 0, nil
		},
	}
	balances := &fakeBalanceRepo{
		deleteByLeaveType: func(ctx context.Context, leaveTypeID string) error {
			balancesDeleted = true
			assert.Equal(t, "lt-1", leaveTypeID)
			return nil
		},
	}

	s := newTypeService(types, balances, requests, &fakeEmployeeRepo{})
	err := s.Delete(context.Background(), "lt-1")

	require.NoError(t, err)
	assert.True(t, balancesDeleted)
	assert.True(t, typeDeleted)
}

func TestDeleteUnknownTypeFails(t *testing.T) {
	types := &fakeTypeRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveType, error) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		},
	}

	s := newTypeService(types, &fakeBalanceRepo{}, &fakeRequestRepo{}, &fakeEmployeeRepo{})
	err := s.Delete(context.Background(), "missing")

	require.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}
