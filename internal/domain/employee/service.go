package employee

import (
	"context"

	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
)

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// CreateEmployee registers a new account (admin only).
	CreateEmployee(ctx context.Context, caller identity.Caller, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// UpdateEmployee updates directory fields. Admins cannot modify
	// other admin accounts.
	UpdateEmployee(ctx context.Context, caller identity.Caller, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an account. Attendance, leave and project
	// assignment rows go with it through the schema's cascade rules.
	DeleteEmployee(ctx context.Context, caller identity.Caller, id string) error

	// ListEmployees lists the whole directory (admin only).
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetProfile returns the caller's own record.
	GetProfile(ctx context.Context, caller identity.Caller) (EmployeeResponse, error)

	// UpdateProfile lets the caller change their own display fields.
	UpdateProfile(ctx context.Context, caller identity.Caller, req UpdateProfileRequest) (EmployeeResponse, error)

	// GetMonthlyStats summarizes one employee's attendance for a month
	// given as "YYYY-MM".
	GetMonthlyStats(ctx context.Context, employeeID string, month string) (MonthlyStatsResponse, error)
}
