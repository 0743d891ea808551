package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, email, password_hash, employee_code, role, designation,
	base_salary, date_of_birth, gender, profile_image,
	paid_leave_balance, last_paid_leave_reset, reset_token, reset_token_expiry,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.EmployeeCode, &e.Role, &e.Designation,
		&e.BaseSalary, &e.DateOfBirth, &e.Gender, &e.ProfileImage,
		&e.PaidLeaveBalance, &e.LastPaidLeaveReset, &e.ResetToken, &e.ResetTokenExpiry,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM users WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM users WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

// GetByResetToken implements employee.EmployeeRepository. Expired
// tokens are treated as missing.
func (r *employeeRepository) GetByResetToken(ctx context.Context, token string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM users
		WHERE reset_token = $1
		  AND reset_token_expiry > NOW()
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by reset token: %w", err)
	}

	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			name, email, password_hash, employee_code, role, designation,
			base_salary, date_of_birth, gender, profile_image,
			paid_leave_balance, last_paid_leave_reset
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.PasswordHash,
		newEmployee.EmployeeCode,
		newEmployee.Role,
		newEmployee.Designation,
		newEmployee.BaseSalary,
		newEmployee.DateOfBirth,
		newEmployee.Gender,
		newEmployee.ProfileImage,
		newEmployee.PaidLeaveBalance,
		newEmployee.LastPaidLeaveReset,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1,
			email = $2,
			password_hash = $3,
			designation = $4,
			base_salary = $5,
			date_of_birth = $6,
			gender = $7,
			profile_image = $8,
			paid_leave_balance = $9,
			last_paid_leave_reset = $10,
			reset_token = $11,
			reset_token_expiry = $12,
			updated_at = NOW()
		WHERE id = $13
	`

	tag, err := q.Exec(ctx, query,
		e.Name,
		e.Email,
		e.PasswordHash,
		e.Designation,
		e.BaseSalary,
		e.DateOfBirth,
		e.Gender,
		e.ProfileImage,
		e.PaidLeaveBalance,
		e.LastPaidLeaveReset,
		e.ResetToken,
		e.ResetTokenExpiry,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository. Attendance, leave and
// project assignment rows cascade through the schema's foreign keys.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.listByRole(ctx, identity.RoleEmployee)
}

// ListAdmins implements employee.EmployeeRepository.
func (r *employeeRepository) ListAdmins(ctx context.Context) ([]employee.Employee, error) {
	return r.listByRole(ctx, identity.RoleAdmin)
}

func (r *employeeRepository) listByRole(ctx context.Context, role identity.Role) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM users WHERE role = $1 ORDER BY name`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// CountAll implements employee.EmployeeRepository.
func (r *employeeRepository) CountAll(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'Employee'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// ExistsByEmailOrCode implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByEmailOrCode(ctx context.Context, email, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR employee_code = $2)`,
		email, employeeCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// AddPaidLeaveToAll implements employee.EmployeeRepository.
func (r *employeeRepository) AddPaidLeaveToAll(ctx context.Context, days int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET paid_leave_balance = paid_leave_balance + $1,
			last_paid_leave_reset = NOW(),
			updated_at = NOW()
		WHERE role = 'Employee'
	`

	tag, err := q.Exec(ctx, query, days)
	if err != nil {
		return 0, fmt.Errorf("failed to add paid leave to all employees: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// AdjustPaidLeaveBalance implements employee.EmployeeRepository.
func (r *employeeRepository) AdjustPaidLeaveBalance(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET paid_leave_balance = GREATEST(0, paid_leave_balance + $1),
			updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to adjust paid leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
