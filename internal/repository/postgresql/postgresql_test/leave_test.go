package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
	"github.com/staffdesk/attendance-backend-go/internal/repository/postgresql"
)

func createTestLeaveRequest(t *testing.T, repo leave.Repository, employeeID string, leaveType leave.Type, start, end time.Time, paid bool) leave.Request {
	t.Helper()

	created, err := repo.Create(context.Background(), leave.Request{
		EmployeeID:  employeeID,
		LeaveType:   leaveType,
		StartDate:   start,
		EndDate:     end,
		Reason:      "family event",
		IsPaidLeave: paid,
		Status:      leave.StatusPending,
	})
	require.NoError(t, err)
	return created
}

func TestLeaveRepository_CreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	repo := postgresql.NewLeaveRepository(db)
	emp := createTestEmployee(t, db, "leave@example.com", "EMP-601")

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	created := createTestLeaveRequest(t, repo, emp.ID, leave.TypeVacation, start, start.AddDate(0, 0, 2), true)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, got.Status)
	assert.Equal(t, leave.TypeVacation, got.LeaveType)
	assert.True(t, got.IsPaidLeave)
	assert.Equal(t, 3, got.DayCount())
}

func TestLeaveRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	repo := postgresql.NewLeaveRepository(db)

	_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestLeaveRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewLeaveRepository(db)
	emp := createTestEmployee(t, db, "approve@example.com", "EMP-602")
	admin := createTestEmployee(t, db, "admin@example.com", "EMP-603")

	start := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	created := createTestLeaveRequest(t, repo, emp.ID, leave.TypeSick, start, start, false)

	note := "get well soon"
	err := repo.UpdateStatus(ctx, created.ID, leave.StatusApproved, admin.ID, time.Now(), &note)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	require.NotNil(t, got.RespondedBy)
	assert.Equal(t, admin.ID, *got.RespondedBy)
	require.NotNil(t, got.AdminNote)
	assert.Equal(t, note, *got.AdminNote)
	assert.NotNil(t, got.RespondedAt)
}

func TestLeaveRepository_ListByStatus_JoinsEmployee(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	repo := postgresql.NewLeaveRepository(db)
	emp := createTestEmployee(t, db, "pending@example.com", "EMP-604")

	start := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	createTestLeaveRequest(t, repo, emp.ID, leave.TypeCasual, start, start, false)

	pending, err := repo.ListByStatus(context.Background(), leave.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].EmployeeName)
	assert.Equal(t, emp.Name, *pending[0].EmployeeName)
	require.NotNil(t, pending[0].EmployeeCode)
	assert.Equal(t, emp.EmployeeCode, *pending[0].EmployeeCode)
}

func TestLeaveRepository_ListApprovedPaidOverlapping(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewLeaveRepository(db)
	emp := createTestEmployee(t, db, "overlap@example.com", "EMP-605")
	admin := createTestEmployee(t, db, "admin2@example.com", "EMP-606")

	// Paid vacation straddling the month boundary.
	created := createTestLeaveRequest(t, repo, emp.ID, leave.TypeVacation,
		time.Date(2026, 9, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), true)
	require.NoError(t, repo.UpdateStatus(ctx, created.ID, leave.StatusApproved, admin.ID, time.Now(), nil))

	// Unpaid sick day inside the window must not show up.
	unpaid := createTestLeaveRequest(t, repo, emp.ID, leave.TypeSick,
		time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC), false)
	require.NoError(t, repo.UpdateStatus(ctx, unpaid.ID, leave.StatusApproved, admin.ID, time.Now(), nil))

	monthStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	overlapping, err := repo.ListApprovedPaidOverlapping(ctx, emp.ID, monthStart, monthEnd)
	require.NoError(t, err)
	require.Len(t, overlapping, 1)
	assert.Equal(t, created.ID, overlapping[0].ID)
}
