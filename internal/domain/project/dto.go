package project

import (
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Running, Completed, On Hold",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	for _, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_ids",
				Message: "employee_ids must contain valid UUIDs",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Running, Completed, On Hold",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_ids",
				Message: "employee_ids must contain valid UUIDs",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssigneeResponse struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Designation  string `json:"designation"`
}

type ProjectResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	StartDate   *string            `json:"start_date,omitempty"`
	EndDate     *string            `json:"end_date,omitempty"`
	Assignees   []AssigneeResponse `json:"assignees"`
	CreatedAt   time.Time          `json:"created_at"`
}

func ToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Assignees:   make([]AssigneeResponse, 0, len(p.Assignees)),
		CreatedAt:   p.CreatedAt,
	}
	if p.StartDate != nil {
		s := p.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if p.EndDate != nil {
		s := p.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	for _, a := range p.Assignees {
		resp.Assignees = append(resp.Assignees, AssigneeResponse{
			EmployeeID:   a.EmployeeID,
			Name:         a.Name,
			EmployeeCode: a.EmployeeCode,
			Designation:  a.Designation,
		})
	}
	return resp
}
