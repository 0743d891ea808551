package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/repository/postgresql"
)

func TestAttendanceRepository_CreateAndGetByEmployeeAndDate(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "punch@example.com", "EMP-501")

	today := attendance.StartOfDay(time.Now().UTC())
	punchIn := today.Add(9 * time.Hour)

	created, err := repo.Create(ctx, attendance.Record{
		EmployeeID: emp.ID,
		Date:       today,
		PunchIn:    &punchIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByEmployeeAndDate(ctx, emp.ID, today)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.PunchIn)
	assert.Equal(t, attendance.StatusPresent, got.Status)
}

func TestAttendanceRepository_GetByEmployeeAndDate_NotFound(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "none@example.com", "EMP-502")

	_, err := repo.GetByEmployeeAndDate(context.Background(), emp.ID, attendance.StartOfDay(time.Now().UTC()))

	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestAttendanceRepository_Update(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "update@example.com", "EMP-503")

	today := attendance.StartOfDay(time.Now().UTC())
	punchIn := today.Add(9 * time.Hour)
	created, err := repo.Create(ctx, attendance.Record{
		EmployeeID: emp.ID,
		Date:       today,
		PunchIn:    &punchIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	punchOut := today.Add(17 * time.Hour)
	created.PunchOut = &punchOut
	created.TotalWorkMinutes = 480
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByEmployeeAndDate(ctx, emp.ID, today)
	require.NoError(t, err)
	require.NotNil(t, got.PunchOut)
	assert.Equal(t, 480, got.TotalWorkMinutes)
}

func TestAttendanceRepository_UpsertLeaveDays_Idempotent(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "leavedays@example.com", "EMP-504")

	start := attendance.StartOfDay(time.Now().UTC())
	days := []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)}

	require.NoError(t, repo.UpsertLeaveDays(ctx, emp.ID, days, "Vacation"))
	require.NoError(t, repo.UpsertLeaveDays(ctx, emp.ID, days, "Vacation"))

	var count int
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_records WHERE employee_id = $1 AND status = 'Leave'`, emp.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAttendanceRepository_History_RespectsLimit(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "history@example.com", "EMP-505")

	today := attendance.StartOfDay(time.Now().UTC())
	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, attendance.Record{
			EmployeeID: emp.ID,
			Date:       today.AddDate(0, 0, -i),
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	records, err := repo.History(ctx, emp.ID, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, today, attendance.StartOfDay(records[0].Date))
}

func TestAttendanceRepository_ListByRange_FiltersEmployee(t *testing.T) {
	db := newTestDB(t)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	first := createTestEmployee(t, db, "range1@example.com", "EMP-506")
	second := createTestEmployee(t, db, "range2@example.com", "EMP-507")

	today := attendance.StartOfDay(time.Now().UTC())
	for _, id := range []string{first.ID, second.ID} {
		_, err := repo.Create(ctx, attendance.Record{
			EmployeeID: id,
			Date:       today,
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	records, err := repo.ListByRange(ctx, today.AddDate(0, 0, -1), today, first.ID, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, first.ID, records[0].EmployeeID)
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, first.Name, *records[0].EmployeeName)
}
