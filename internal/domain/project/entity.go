package project

import (
	"time"
)

type Status string

const (
	StatusRunning   Status = "Running"
	StatusCompleted Status = "Completed"
	StatusOnHold    Status = "On Hold"
)

func (s Status) Valid() bool {
	return s == StatusRunning || s == StatusCompleted || s == StatusOnHold
}

type Project struct {
	ID          string
	Name        string
	Description string
	Status      Status
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Assignees []Assignee
}

// Assignee is an employee attached to a project.
type Assignee struct {
	EmployeeID   string
	Name         string
	EmployeeCode string
	Designation  string
}
