package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/project"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepository{db: db}
}

// Create implements project.Repository.
func (p *projectRepository) Create(ctx context.Context, proj project.Project) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO projects (name, description, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		proj.Name,
		proj.Description,
		proj.Status,
		proj.StartDate,
		proj.EndDate,
	).Scan(&proj.ID, &proj.CreatedAt, &proj.UpdatedAt)

	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return proj, nil
}

// GetByID implements project.Repository.
func (p *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, description, status, start_date, end_date, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var proj project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&proj.ID, &proj.Name, &proj.Description, &proj.Status,
		&proj.StartDate, &proj.EndDate, &proj.CreatedAt, &proj.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	assignees, err := p.listAssignees(ctx, proj.ID)
	if err != nil {
		return project.Project{}, err
	}
	proj.Assignees = assignees

	return proj, nil
}

// Update implements project.Repository.
func (p *projectRepository) Update(ctx context.Context, proj project.Project) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE projects
		SET name = $1,
			description = $2,
			status = $3,
			start_date = $4,
			end_date = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		proj.Name, proj.Description, proj.Status, proj.StartDate, proj.EndDate, proj.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// Delete implements project.Repository. Assignment rows cascade.
func (p *projectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// List implements project.Repository.
func (p *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, description, status, start_date, end_date, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		assignees, err := p.listAssignees(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Assignees = assignees
	}

	return projects, nil
}

// ListByEmployee implements project.Repository.
func (p *projectRepository) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.name, p.description, p.status, p.start_date, p.end_date, p.created_at, p.updated_at
		FROM projects p
		JOIN project_assignments pa ON pa.project_id = p.id
		WHERE pa.employee_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for employee: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// ReplaceAssignments implements project.Repository.
func (p *projectRepository) ReplaceAssignments(ctx context.Context, projectID string, employeeIDs []string) error {
	return WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM project_assignments WHERE project_id = $1`, projectID); err != nil {
			return fmt.Errorf("failed to clear project assignments: %w", err)
		}

		for _, employeeID := range employeeIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO project_assignments (project_id, employee_id) VALUES ($1, $2)
				 ON CONFLICT DO NOTHING`,
				projectID, employeeID,
			)
			if err != nil {
				return fmt.Errorf("failed to assign employee to project: %w", err)
			}
		}

		return nil
	})
}

// ExistsByName implements project.Repository.
func (p *projectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, p.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project name: %w", err)
	}

	return exists, nil
}

func (p *projectRepository) listAssignees(ctx context.Context, projectID string) ([]project.Assignee, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT u.id, u.name, u.employee_code, u.designation
		FROM project_assignments pa
		JOIN users u ON u.id = pa.employee_id
		WHERE pa.project_id = $1
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project assignees: %w", err)
	}
	defer rows.Close()

	var assignees []project.Assignee
	for rows.Next() {
		var a project.Assignee
		if err := rows.Scan(&a.EmployeeID, &a.Name, &a.EmployeeCode, &a.Designation); err != nil {
			return nil, fmt.Errorf("failed to scan project assignee: %w", err)
		}
		assignees = append(assignees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignee rows: %w", err)
	}

	return assignees, nil
}

func collectProjects(rows pgx.Rows) ([]project.Project, error) {
	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		err := rows.Scan(
			&proj.ID, &proj.Name, &proj.Description, &proj.Status,
			&proj.StartDate, &proj.EndDate, &proj.CreatedAt, &proj.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project rows: %w", err)
	}
	return projects, nil
}
