package leave

import (
	"context"

	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
)

type Service interface {
	// SubmitRequest validates the range, notice period and paid-leave
	// balance, then files a Pending request and notifies admins.
	SubmitRequest(ctx context.Context, caller identity.Caller, req SubmitRequest) (RequestResponse, error)

	// RespondToRequest approves or rejects a pending request. Approval
	// deducts paid leave when applicable and writes the span into the
	// attendance ledger.
	RespondToRequest(ctx context.Context, caller identity.Caller, requestID string, req RespondRequest) (RequestResponse, error)

	// MyRequests lists the caller's requests, newest first.
	MyRequests(ctx context.Context, caller identity.Caller) ([]RequestResponse, error)

	// PendingRequests lists all pending requests (admin).
	PendingRequests(ctx context.Context) ([]RequestResponse, error)

	// MyBalance returns the caller's paid-leave balance.
	MyBalance(ctx context.Context, caller identity.Caller) (BalanceResponse, error)

	// MonthlyReset credits one paid-leave day to every employee and
	// returns how many accounts were updated.
	MonthlyReset(ctx context.Context) (int, error)
}
