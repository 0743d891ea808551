package employee

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/email"
)

type ServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.Repository
	email          email.Service
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.Repository,
	emailService email.Service,
) employee.EmployeeService {
	return &ServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		email:          emailService,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *ServiceImpl) CreateEmployee(ctx context.Context, caller identity.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmailOrCode(ctx, req.Email, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := identity.RoleEmployee
	if req.Role != "" {
		role = identity.Role(req.Role)
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date of birth: %w", err)
	}

	profileImage := req.ProfileImage
	if profileImage == "" {
		profileImage = "default_profile.png"
	}

	// New hires start with one paid-leave day credited immediately.
	now := time.Now()
	newEmployee := employee.Employee{
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hash),
		EmployeeCode:       req.EmployeeCode,
		Role:               role,
		Designation:        employee.Designation(req.Designation),
		BaseSalary:         decimal.NewFromFloat(req.BaseSalary),
		DateOfBirth:        dateOfBirth,
		Gender:             employee.Gender(req.Gender),
		ProfileImage:       profileImage,
		PaidLeaveBalance:   1,
		LastPaidLeaveReset: &now,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	go func() {
		if err := s.email.SendWelcome(created.Email, created.Name, created.EmployeeCode); err != nil {
			slog.Error("Failed to send welcome email", "employee_email", created.Email, "error", err)
		}
	}()

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *ServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *ServiceImpl) UpdateEmployee(ctx context.Context, caller identity.Caller, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if emp.Role == identity.RoleAdmin && emp.ID != caller.UserID {
		return employee.EmployeeResponse{}, employee.ErrCannotModifyAdmin
	}

	if req.Email != nil && *req.Email != emp.Email {
		exists, err := s.employeeRepo.ExistsByEmailOrCode(ctx, *req.Email, "")
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Designation != nil {
		emp.Designation = employee.Designation(*req.Designation)
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = decimal.NewFromFloat(*req.BaseSalary)
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		emp.DateOfBirth = dateOfBirth
	}
	if req.Gender != nil {
		emp.Gender = employee.Gender(*req.Gender)
	}
	if req.ProfileImage != nil {
		emp.ProfileImage = *req.ProfileImage
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	go func() {
		if err := s.email.SendProfileUpdated(emp.Email, emp.Name); err != nil {
			slog.Error("Failed to send profile update email", "employee_email", emp.Email, "error", err)
		}
	}()

	return employee.ToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *ServiceImpl) DeleteEmployee(ctx context.Context, caller identity.Caller, id string) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	if id == caller.UserID {
		return employee.ErrCannotDeleteSelf
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if emp.Role == identity.RoleAdmin {
		return employee.ErrCannotDeleteAdmin
	}

	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees implements employee.EmployeeService.
func (s *ServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, nil
}

// GetProfile implements employee.EmployeeService.
func (s *ServiceImpl) GetProfile(ctx context.Context, caller identity.Caller) (employee.EmployeeResponse, error) {
	return s.GetEmployee(ctx, caller.UserID)
}

// UpdateProfile implements employee.EmployeeService.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, caller identity.Caller, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.ProfileImage != nil {
		emp.ProfileImage = *req.ProfileImage
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// GetMonthlyStats implements employee.EmployeeService.
func (s *ServiceImpl) GetMonthlyStats(ctx context.Context, employeeID string, month string) (employee.MonthlyStatsResponse, error) {
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return employee.MonthlyStatsResponse{}, fmt.Errorf("failed to parse month: %w", err)
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return employee.MonthlyStatsResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return employee.MonthlyStatsResponse{}, err
	}

	stats := employee.MonthlyStatsResponse{
		EmployeeID:   employeeID,
		Month:        month,
		DaysRecorded: len(records),
	}

	var workMinutes int
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusHalfDay:
			stats.HalfDays++
		case attendance.StatusLeave:
			stats.LeaveDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		}
		workMinutes += r.TotalWorkMinutes
	}

	stats.TotalWorkHours = math.Round(float64(workMinutes)/60*10) / 10
	workedDays := stats.PresentDays + stats.HalfDays
	if workedDays > 0 {
		stats.AvgWorkHours = math.Round(float64(workMinutes)/60/float64(workedDays)*10) / 10
	}

	return stats, nil
}
