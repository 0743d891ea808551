package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByResetToken(ctx context.Context, token string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Employee, error)
	ListAdmins(ctx context.Context) ([]Employee, error)
	CountAll(ctx context.Context) (int, error)
	ExistsByEmailOrCode(ctx context.Context, email, employeeCode string) (bool, error)

	// AddPaidLeaveToAll credits every Employee-role account in one
	// statement and returns the number of rows touched.
	AddPaidLeaveToAll(ctx context.Context, days int) (int, error)

	// AdjustPaidLeaveBalance applies a delta, clamping the result at zero.
	AdjustPaidLeaveBalance(ctx context.Context, id string, delta int) error
}
