package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrManagerNotFound  = errors.New("manager not found")
	ErrSelfDeletion     = errors.New("cannot delete own account")
)
