package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/attendance-backend-go/internal/config"
	"github.com/staffdesk/attendance-backend-go/internal/domain/auth"
	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/email"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/jwt"
)

const resetTokenTTL = time.Hour

type ServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	email        email.Service
	appConfig    config.AppConfig
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	emailService email.Service,
	appConfig config.AppConfig,
) auth.Service {
	return &ServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		email:        emailService,
		appConfig:    appConfig,
	}
}

// Login implements auth.Service.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        toProfile(emp),
	}, nil
}

// Verify implements auth.Service.
func (s *ServiceImpl) Verify(ctx context.Context, caller identity.Caller) (auth.ProfileResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.ProfileResponse{}, auth.ErrUserNotFound
		}
		return auth.ProfileResponse{}, err
	}

	return toProfile(emp), nil
}

// ChangePassword implements auth.Service.
func (s *ServiceImpl) ChangePassword(ctx context.Context, caller identity.Caller, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	emp.PasswordHash = string(hash)
	return s.employeeRepo.Update(ctx, emp)
}

// ForgotPassword implements auth.Service. The caller gets the same
// answer whether or not the account exists.
func (s *ServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Info("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	expiry := time.Now().Add(resetTokenTTL)

	emp.ResetToken = &token
	emp.ResetTokenExpiry = &expiry
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.appConfig.FrontendURL, token)

	go func() {
		if err := s.email.SendPasswordReset(emp.Email, resetLink, expiry.Format(time.RFC1123)); err != nil {
			slog.Error("Failed to send password reset email", "error", err)
		}
	}()

	return nil
}

// ResetPassword implements auth.Service.
func (s *ServiceImpl) ResetPassword(ctx context.Context, token string, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.ErrInvalidToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	emp.PasswordHash = string(hash)
	emp.ResetToken = nil
	emp.ResetTokenExpiry = nil
	return s.employeeRepo.Update(ctx, emp)
}

func toProfile(emp employee.Employee) auth.ProfileResponse {
	return auth.ProfileResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Role:         string(emp.Role),
		Designation:  string(emp.Designation),
		ProfileImage: emp.ProfileImage,
	}
}
