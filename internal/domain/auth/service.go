package auth

import (
	"context"

	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Verify returns the profile behind a valid token's caller.
	Verify(ctx context.Context, caller identity.Caller) (ProfileResponse, error)

	ChangePassword(ctx context.Context, caller identity.Caller, req ChangePasswordRequest) error

	// ForgotPassword issues a reset token and mails a reset link. The
	// response is identical whether or not the account exists.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	ResetPassword(ctx context.Context, token string, req ResetPasswordRequest) error
}
