package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	EmployeeCode string  `json:"employee_code"`
	Role         string  `json:"role"`
	Designation  string  `json:"designation"`
	BaseSalary   float64 `json:"base_salary"`
	DateOfBirth  string  `json:"date_of_birth"`
	Gender       string  `json:"gender"`
	ProfileImage string  `json:"profile_image"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{"Admin", "Employee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be Admin or Employee",
		})
	}

	if !Designation(r.Designation).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation must be one of Developer, Designer, HR, Manager, Other",
		})
	}

	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be in YYYY-MM-DD format",
		})
	}

	if !Gender(r.Gender).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male, Female or Other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries the admin-editable fields. Nil means
// leave unchanged.
type UpdateEmployeeRequest struct {
	Name         *string  `json:"name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Designation  *string  `json:"designation,omitempty"`
	BaseSalary   *float64 `json:"base_salary,omitempty"`
	DateOfBirth  *string  `json:"date_of_birth,omitempty"`
	Gender       *string  `json:"gender,omitempty"`
	ProfileImage *string  `json:"profile_image,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if r.Designation != nil && !Designation(*r.Designation).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation must be one of Developer, Designer, HR, Manager, Other",
		})
	}

	if r.BaseSalary != nil && *r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Gender != nil && !Gender(*r.Gender).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male, Female or Other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProfileRequest is the self-service subset: employees may change
// display fields but never salary, role or employee code.
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	EmployeeCode     string          `json:"employee_code"`
	Role             string          `json:"role"`
	Designation      string          `json:"designation"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	DateOfBirth      string          `json:"date_of_birth"`
	Gender           string          `json:"gender"`
	ProfileImage     string          `json:"profile_image"`
	PaidLeaveBalance int             `json:"paid_leave_balance"`
	CreatedAt        time.Time       `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		EmployeeCode:     e.EmployeeCode,
		Role:             string(e.Role),
		Designation:      string(e.Designation),
		BaseSalary:       e.BaseSalary,
		DateOfBirth:      e.DateOfBirth.Format("2006-01-02"),
		Gender:           string(e.Gender),
		ProfileImage:     e.ProfileImage,
		PaidLeaveBalance: e.PaidLeaveBalance,
		CreatedAt:        e.CreatedAt,
	}
}

// MonthlyStatsResponse summarizes one employee's attendance for a month.
type MonthlyStatsResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Month          string  `json:"month"`
	DaysRecorded   int     `json:"days_recorded"`
	PresentDays    int     `json:"present_days"`
	HalfDays       int     `json:"half_days"`
	LeaveDays      int     `json:"leave_days"`
	AbsentDays     int     `json:"absent_days"`
	TotalWorkHours float64 `json:"total_work_hours"`
	AvgWorkHours   float64 `json:"avg_work_hours"`
}
