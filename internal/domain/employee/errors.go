package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrCannotModifyAdmin   = errors.New("admin accounts cannot be modified by other admins")
	ErrCannotDeleteAdmin   = errors.New("admin accounts cannot be deleted")
	ErrCannotDeleteSelf    = errors.New("cannot delete your own account")
	ErrNoEmployeesToUpdate = errors.New("no employees found to update")
)
