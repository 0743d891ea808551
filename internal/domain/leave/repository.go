package leave

import (
	"context"
	"time"
)

// Repository - interface for leave_requests table
type Repository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// ListByEmployee returns one employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// ListByStatus returns requests in one status joined with employee
	// name and code, newest first.
	ListByStatus(ctx context.Context, status Status) ([]Request, error)

	// UpdateStatus records the decision on a request.
	UpdateStatus(ctx context.Context, id string, status Status, respondedBy string, respondedAt time.Time, note *string) error

	// ListApprovedPaidOverlapping returns approved paid requests for
	// the employee whose span touches [start, end].
	ListApprovedPaidOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Request, error)
}
