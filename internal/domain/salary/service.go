package salary

import (
	"context"
)

// Service computes monthly salaries. The per-employee and bulk paths
// run the same computation; bulk is a loop, not an approximation.
type Service interface {
	// ForEmployee computes one employee's salary for the given month.
	ForEmployee(ctx context.Context, employeeID string, month, year int) (SalaryResponse, error)

	// ForAllEmployees computes every employee's salary for the month.
	ForAllEmployees(ctx context.Context, month, year int) ([]SalaryResponse, error)
}
