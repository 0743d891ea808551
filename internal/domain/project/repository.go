package project

import "context"

type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error

	// List returns all projects with their assignees.
	List(ctx context.Context) ([]Project, error)

	// ListByEmployee returns the projects one employee is assigned to.
	ListByEmployee(ctx context.Context, employeeID string) ([]Project, error)

	// ReplaceAssignments swaps a project's assignee set atomically.
	ReplaceAssignments(ctx context.Context, projectID string, employeeIDs []string) error

	ExistsByName(ctx context.Context, name string) (bool, error)
}
