package project

import (
	"context"
)

type Service interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error
	GetProject(ctx context.Context, id string) (ProjectResponse, error)
	ListProjects(ctx context.Context) ([]ProjectResponse, error)

	// AssignEmployees replaces the project's assignee set.
	AssignEmployees(ctx context.Context, id string, req AssignRequest) (ProjectResponse, error)

	// MyProjects lists the projects the employee is assigned to.
	MyProjects(ctx context.Context, employeeID string) ([]ProjectResponse, error)
}
