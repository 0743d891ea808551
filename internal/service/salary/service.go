package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
	"github.com/staffdesk/attendance-backend-go/internal/domain/salary"
)

type ServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
) salary.Service {
	return &ServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// ForEmployee implements salary.Service.
func (s *ServiceImpl) ForEmployee(ctx context.Context, employeeID string, month, year int) (salary.SalaryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return s.compute(ctx, emp, month, year)
}

// ForAllEmployees implements salary.Service.
func (s *ServiceImpl) ForAllEmployees(ctx context.Context, month, year int) ([]salary.SalaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryResponse, 0, len(employees))
	for _, emp := range employees {
		if emp.Role != identity.RoleEmployee {
			continue
		}

		resp, err := s.compute(ctx, emp, month, year)
		if err != nil {
			return nil, fmt.Errorf("failed to compute salary for %s: %w", emp.ID, err)
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *ServiceImpl) compute(ctx context.Context, emp employee.Employee, month, year int) (salary.SalaryResponse, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	paidLeaveDates, err := s.paidLeaveDates(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	breakdown := salary.Compute(emp.BaseSalary, records, paidLeaveDates)

	return salary.ToResponse(emp.ID, emp.Name, month, year, breakdown), nil
}

// paidLeaveDates expands the month's approved paid leave requests into
// the set of calendar days they cover.
func (s *ServiceImpl) paidLeaveDates(ctx context.Context, employeeID string, start, end time.Time) (map[string]struct{}, error) {
	requests, err := s.leaveRepo.ListApprovedPaidOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]struct{})
	for _, r := range requests {
		for _, day := range leave.DaysBetween(r.StartDate, r.EndDate) {
			dates[day.Format("2006-01-02")] = struct{}{}
		}
	}

	return dates, nil
}
