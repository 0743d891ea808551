// Package identity carries the authenticated caller through the service
// layer. Handlers build a Caller from verified token claims and pass it
// explicitly into operations that need attribution or a role check, so
// services never read authentication state out of the request context.
package identity

import "errors"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Caller identifies who is performing an operation.
type Caller struct {
	UserID string
	Role   Role
}

var ErrForbidden = errors.New("caller is not allowed to perform this action")

// RequireAdmin returns ErrForbidden unless the caller holds the Admin role.
func (c Caller) RequireAdmin() error {
	if c.Role != RoleAdmin {
		return ErrForbidden
	}
	return nil
}
