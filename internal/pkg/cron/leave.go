package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
)

// LeaveJobs owns the recurring paid-leave accrual. The job ticks hourly
// and fires once per calendar month, so a restart mid-month never
// double-credits.
type LeaveJobs struct {
	leaveService leave.Service

	mu            sync.Mutex
	lastCredited  time.Month
	lastCreditedY int
}

func NewLeaveJobs(leaveService leave.Service) *LeaveJobs {
	now := time.Now()
	return &LeaveJobs{
		leaveService:  leaveService,
		lastCredited:  now.Month(),
		lastCreditedY: now.Year(),
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_paid_leave_credit", 1*time.Hour, j.CreditMonthlyPaidLeave)
}

func (j *LeaveJobs) CreditMonthlyPaidLeave(ctx context.Context) error {
	now := time.Now()

	j.mu.Lock()
	alreadyCredited := now.Year() == j.lastCreditedY && now.Month() == j.lastCredited
	j.mu.Unlock()

	if alreadyCredited {
		return nil
	}

	slog.Info("Cron: Starting monthly paid leave credit job")

	updated, err := j.leaveService.MonthlyReset(ctx)
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.lastCredited = now.Month()
	j.lastCreditedY = now.Year()
	j.mu.Unlock()

	slog.Info("Cron: Monthly paid leave credited", "employees_updated", updated)
	return nil
}
