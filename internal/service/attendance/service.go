package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
)

type ServiceImpl struct {
	repo attendance.Repository
}

func NewService(repo attendance.Repository) attendance.Service {
	return &ServiceImpl{repo: repo}
}

// PunchIn implements attendance.Service.
func (s *ServiceImpl) PunchIn(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := time.Now()
	today := attendance.StartOfDay(now)

	record, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	if err == nil && record.PunchIn != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedIn
	}

	if errors.Is(err, attendance.ErrRecordNotFound) {
		record = attendance.Record{
			EmployeeID: employeeID,
			Date:       today,
			PunchIn:    &now,
			Status:     attendance.StatusPresent,
		}
		created, err := s.repo.Create(ctx, record)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		return attendance.ToResponse(created), nil
	}

	// Reuse an existing record, e.g. one pre-marked Absent.
	record.PunchIn = &now
	record.Status = attendance.StatusPresent
	if err := s.repo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// LunchStart implements attendance.Service.
func (s *ServiceImpl) LunchStart(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := time.Now()

	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if record.PunchIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotPunchedIn
	}
	if record.LunchStart != nil {
		return attendance.RecordResponse{}, attendance.ErrLunchAlreadyStarted
	}

	record.LunchStart = &now
	if err := s.repo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// LunchEnd implements attendance.Service.
func (s *ServiceImpl) LunchEnd(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := time.Now()

	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if record.LunchStart == nil {
		return attendance.RecordResponse{}, attendance.ErrLunchNotStarted
	}
	if record.LunchEnd != nil {
		return attendance.RecordResponse{}, attendance.ErrLunchAlreadyEnded
	}

	record.LunchEnd = &now
	record.TotalBreakMinutes += attendance.MinutesBetween(*record.LunchStart, now)
	if err := s.repo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// PunchOut implements attendance.Service.
func (s *ServiceImpl) PunchOut(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := time.Now()

	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if record.PunchIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotPunchedIn
	}
	if record.PunchOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedOut
	}

	// An unterminated lunch is folded into the break total before close.
	if record.LunchStart != nil && record.LunchEnd == nil {
		record.LunchEnd = &now
		record.TotalBreakMinutes += attendance.MinutesBetween(*record.LunchStart, now)
	}

	record.PunchOut = &now
	record.TotalWorkMinutes = attendance.MinutesBetween(*record.PunchIn, now) - record.TotalBreakMinutes
	record.Status = attendance.DeriveStatus(record.TotalWorkMinutes)

	if err := s.repo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// Today implements attendance.Service.
func (s *ServiceImpl) Today(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

// History implements attendance.Service.
func (s *ServiceImpl) History(ctx context.Context, employeeID string, limit int) ([]attendance.RecordResponse, error) {
	records, err := s.repo.History(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}

	return responses, nil
}

// MarkLeaveDays implements attendance.Service. The span expands to one
// midnight per day and lands in a single idempotent upsert.
func (s *ServiceImpl) MarkLeaveDays(ctx context.Context, employeeID string, start, end time.Time, leaveType string) error {
	days := leave.DaysBetween(start, end)
	if err := s.repo.UpsertLeaveDays(ctx, employeeID, days, leaveType); err != nil {
		return fmt.Errorf("failed to mark leave days: %w", err)
	}
	return nil
}

func (s *ServiceImpl) todayRecord(ctx context.Context, employeeID string) (attendance.Record, error) {
	return s.repo.GetByEmployeeAndDate(ctx, employeeID, attendance.StartOfDay(time.Now()))
}
