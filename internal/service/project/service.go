package project

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/project"
)

type ServiceImpl struct {
	projectRepo project.Repository
}

func NewService(projectRepo project.Repository) project.Service {
	return &ServiceImpl{projectRepo: projectRepo}
}

// CreateProject implements project.Service.
func (s *ServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	exists, err := s.projectRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if exists {
		return project.ProjectResponse{}, project.ErrNameExists
	}

	status := project.StatusRunning
	if req.Status != "" {
		status = project.Status(req.Status)
	}

	proj := project.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		proj.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		proj.EndDate = &endDate
	}

	created, err := s.projectRepo.Create(ctx, proj)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if len(req.EmployeeIDs) > 0 {
		if err := s.projectRepo.ReplaceAssignments(ctx, created.ID, req.EmployeeIDs); err != nil {
			return project.ProjectResponse{}, err
		}
		created, err = s.projectRepo.GetByID(ctx, created.ID)
		if err != nil {
			return project.ProjectResponse{}, err
		}
	}

	return project.ToResponse(created), nil
}

// UpdateProject implements project.Service.
func (s *ServiceImpl) UpdateProject(ctx context.Context, id string, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	proj, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Name != nil && *req.Name != proj.Name {
		exists, err := s.projectRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return project.ProjectResponse{}, err
		}
		if exists {
			return project.ProjectResponse{}, project.ErrNameExists
		}
		proj.Name = *req.Name
	}

	if req.Description != nil {
		proj.Description = *req.Description
	}
	if req.Status != nil {
		proj.Status = project.Status(*req.Status)
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		proj.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		proj.EndDate = &endDate
	}

	if err := s.projectRepo.Update(ctx, proj); err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(proj), nil
}

// DeleteProject implements project.Service.
func (s *ServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

// GetProject implements project.Service.
func (s *ServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	proj, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.ToResponse(proj), nil
}

// ListProjects implements project.Service.
func (s *ServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}

	return responses, nil
}

// AssignEmployees implements project.Service.
func (s *ServiceImpl) AssignEmployees(ctx context.Context, id string, req project.AssignRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.projectRepo.ReplaceAssignments(ctx, id, req.EmployeeIDs); err != nil {
		return project.ProjectResponse{}, err
	}

	proj, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(proj), nil
}

// MyProjects implements project.Service.
func (s *ServiceImpl) MyProjects(ctx context.Context, employeeID string) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}

	return responses, nil
}
