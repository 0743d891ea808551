package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
)

// newTestDB connects to the database named by TEST_DATABASE_URL. Tests
// that need a live database skip when the variable is unset, so the
// suite stays runnable without local infrastructure.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)

	t.Cleanup(db.Close)
	return db
}

func truncateAllTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"project_assignments",
		"projects",
		"leave_requests",
		"attendance_records",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, db *database.DB, email, code string) employee.Employee {
	t.Helper()
	ctx := context.Background()

	var e employee.Employee
	err := db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, employee_code, role, designation, base_salary, date_of_birth, gender, paid_leave_balance)
		VALUES ('Test Employee', $1, 'hash', $2, 'Employee', 'Developer', 22000, '1995-04-12', 'Female', 2)
		RETURNING id, name, email, employee_code, paid_leave_balance, created_at
	`, email, code).Scan(&e.ID, &e.Name, &e.Email, &e.EmployeeCode, &e.PaidLeaveBalance, &e.CreatedAt)
	require.NoError(t, err)

	e.Role = identity.RoleEmployee
	e.Designation = employee.DesignationDeveloper
	e.BaseSalary = decimal.NewFromInt(22000)
	e.Gender = employee.GenderFemale
	e.DateOfBirth = time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	return e
}
