package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/email"
)

type ServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.EmployeeRepository
	attendance   attendance.Service
	email        email.Service
}

func NewService(
	leaveRepo leave.Repository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.Service,
	emailService email.Service,
) leave.Service {
	return &ServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		attendance:   attendanceService,
		email:        emailService,
	}
}

// SubmitRequest implements leave.Service.
func (s *ServiceImpl) SubmitRequest(ctx context.Context, caller identity.Caller, req leave.SubmitRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	leaveType := leave.Type(req.LeaveType)

	// Notice is counted in calendar days from today to the start date.
	// A request landing exactly on the boundary is accepted.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	notice := leave.DayCountBetween(today, startDate) - 1
	if notice < leaveType.MinNoticeDays() {
		return leave.RequestResponse{}, leave.ErrInsufficientNotice
	}

	emp, err := s.employeeRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	dayCount := leave.DayCountBetween(startDate, endDate)
	if req.IsPaidLeave && dayCount > emp.PaidLeaveBalance {
		return leave.RequestResponse{}, fmt.Errorf("%w: requested %d days, %d available",
			leave.ErrInsufficientPaidLeave, dayCount, emp.PaidLeaveBalance)
	}

	request := leave.Request{
		EmployeeID:  caller.UserID,
		LeaveType:   leaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		IsPaidLeave: req.IsPaidLeave,
		Status:      leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	go s.notifyAdmins(emp, created)

	return leave.ToResponse(created), nil
}

// RespondToRequest implements leave.Service.
func (s *ServiceImpl) RespondToRequest(ctx context.Context, caller identity.Caller, requestID string, req leave.RespondRequest) (leave.RequestResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return leave.RequestResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	status := leave.StatusRejected
	if req.Action == "approve" {
		status = leave.StatusApproved
	}

	respondedAt := time.Now()
	if err := s.leaveRepo.UpdateStatus(ctx, request.ID, status, caller.UserID, respondedAt, req.AdminNote); err != nil {
		return leave.RequestResponse{}, err
	}

	request.Status = status
	request.RespondedBy = &caller.UserID
	request.RespondedAt = &respondedAt
	request.AdminNote = req.AdminNote

	if status == leave.StatusApproved {
		if request.IsPaidLeave {
			if err := s.employeeRepo.AdjustPaidLeaveBalance(ctx, request.EmployeeID, -request.DayCount()); err != nil {
				return leave.RequestResponse{}, fmt.Errorf("failed to deduct paid leave: %w", err)
			}
		}

		if err := s.attendance.MarkLeaveDays(ctx, request.EmployeeID, request.StartDate, request.EndDate, string(request.LeaveType)); err != nil {
			return leave.RequestResponse{}, err
		}
	}

	go s.notifyEmployee(request)

	return leave.ToResponse(request), nil
}

// MyRequests implements leave.Service.
func (s *ServiceImpl) MyRequests(ctx context.Context, caller identity.Caller) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}

	return responses, nil
}

// PendingRequests implements leave.Service.
func (s *ServiceImpl) PendingRequests(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}

	return responses, nil
}

// MyBalance implements leave.Service.
func (s *ServiceImpl) MyBalance(ctx context.Context, caller identity.Caller) (leave.BalanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		EmployeeID:       emp.ID,
		PaidLeaveBalance: emp.PaidLeaveBalance,
		LastReset:        emp.LastPaidLeaveReset,
	}, nil
}

// MonthlyReset implements leave.Service.
func (s *ServiceImpl) MonthlyReset(ctx context.Context) (int, error) {
	updated, err := s.employeeRepo.AddPaidLeaveToAll(ctx, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to credit monthly paid leave: %w", err)
	}

	slog.Info("Monthly paid leave credited", "employees_updated", updated)
	return updated, nil
}

func (s *ServiceImpl) notifyAdmins(emp employee.Employee, request leave.Request) {
	admins, err := s.employeeRepo.ListAdmins(context.Background())
	if err != nil {
		slog.Error("Failed to list admins for leave notification", "error", err)
		return
	}

	for _, admin := range admins {
		err := s.email.SendLeaveRequest(
			admin.Email,
			admin.Name,
			emp.Name,
			string(request.LeaveType),
			request.StartDate.Format("2006-01-02"),
			request.EndDate.Format("2006-01-02"),
			request.Reason,
		)
		if err != nil {
			slog.Error("Failed to send leave request email", "admin_email", admin.Email, "error", err)
		}
	}
}

func (s *ServiceImpl) notifyEmployee(request leave.Request) {
	emp, err := s.employeeRepo.GetByID(context.Background(), request.EmployeeID)
	if err != nil {
		slog.Error("Failed to load employee for leave notification", "employee_id", request.EmployeeID, "error", err)
		return
	}

	err = s.email.SendLeaveResponse(
		emp.Email,
		emp.Name,
		string(request.LeaveType),
		request.StartDate.Format("2006-01-02"),
		request.EndDate.Format("2006-01-02"),
		string(request.Status),
		request.AdminNote,
	)
	if err != nil {
		slog.Error("Failed to send leave response email", "employee_email", emp.Email, "error", err)
	}
}
