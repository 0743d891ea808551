package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
)

type Employee struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	EmployeeCode       string
	Role               identity.Role
	Designation        Designation
	BaseSalary         decimal.Decimal
	DateOfBirth        time.Time
	Gender             Gender
	ProfileImage       string
	PaidLeaveBalance   int
	LastPaidLeaveReset *time.Time
	ResetToken         *string
	ResetTokenExpiry   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Designation string

const (
	DesignationDeveloper Designation = "Developer"
	DesignationDesigner  Designation = "Designer"
	DesignationHR        Designation = "HR"
	DesignationManager   Designation = "Manager"
	DesignationOther     Designation = "Other"
)

func (d Designation) Valid() bool {
	switch d {
	case DesignationDeveloper, DesignationDesigner, DesignationHR, DesignationManager, DesignationOther:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
