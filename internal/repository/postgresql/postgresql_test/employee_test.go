package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/repository/postgresql"
)

func TestEmployeeRepository_Create_Success(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	now := time.Now()
	newEmployee := employee.Employee{
		Name:               "Ada Park",
		Email:              "ada.park@example.com",
		PasswordHash:       "hash",
		EmployeeCode:       "EMP-001",
		Role:               identity.RoleEmployee,
		Designation:        employee.DesignationDeveloper,
		BaseSalary:         decimal.NewFromInt(22000),
		DateOfBirth:        time.Date(1994, 7, 3, 0, 0, 0, 0, time.UTC),
		Gender:             employee.GenderFemale,
		ProfileImage:       "default_profile.png",
		PaidLeaveBalance:   1,
		LastPaidLeaveReset: &now,
	}

	created, err := repo.Create(ctx, newEmployee)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, newEmployee.Email, created.Email)
	assert.Equal(t, newEmployee.EmployeeCode, created.EmployeeCode)
	assert.NotZero(t, created.CreatedAt)
}

func TestEmployeeRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	repo := postgresql.NewEmployeeRepository(db)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ExistsByEmailOrCode(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)
	createTestEmployee(t, db, "kim@example.com", "EMP-010")

	exists, err := repo.ExistsByEmailOrCode(ctx, "kim@example.com", "EMP-999")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrCode(ctx, "other@example.com", "EMP-010")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrCode(ctx, "other@example.com", "EMP-999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmployeeRepository_AddPaidLeaveToAll(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	first := createTestEmployee(t, db, "one@example.com", "EMP-101")
	second := createTestEmployee(t, db, "two@example.com", "EMP-102")

	updated, err := repo.AddPaidLeaveToAll(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.PaidLeaveBalance+1, got.PaidLeaveBalance)
	assert.NotNil(t, got.LastPaidLeaveReset)

	got, err = repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.PaidLeaveBalance+1, got.PaidLeaveBalance)
}

func TestEmployeeRepository_AdjustPaidLeaveBalance_ClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)
	emp := createTestEmployee(t, db, "clamp@example.com", "EMP-201")

	err := repo.AdjustPaidLeaveBalance(ctx, emp.ID, -(emp.PaidLeaveBalance + 5))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.PaidLeaveBalance)
}

func TestEmployeeRepository_GetByResetToken_Expired(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)
	emp := createTestEmployee(t, db, "reset@example.com", "EMP-301")

	_, err := db.Exec(ctx, `
		UPDATE users SET reset_token = 'expired-token', reset_token_expiry = NOW() - INTERVAL '1 hour'
		WHERE id = $1
	`, emp.ID)
	require.NoError(t, err)

	_, err = repo.GetByResetToken(ctx, "expired-token")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_Delete_CascadesAttendance(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)
	emp := createTestEmployee(t, db, "cascade@example.com", "EMP-401")

	_, err := db.Exec(ctx, `
		INSERT INTO attendance_records (employee_id, date, status) VALUES ($1, CURRENT_DATE, 'Present')
	`, emp.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, emp.ID))

	var count int
	err = db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_records WHERE employee_id = $1`, emp.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
