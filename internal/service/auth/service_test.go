package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/attendance-backend-go/internal/config"
	"github.com/staffdesk/attendance-backend-go/internal/domain/auth"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/email"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/attendance-backend-go/internal/repository/postgresql"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
	testPassword  = "password123"
)

func newAuthTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(context.Background(), "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)

	return db
}

func newAuthTestService(t *testing.T, db *database.DB) auth.Service {
	t.Helper()

	emailService, err := email.NewService(config.SMTPConfig{})
	require.NoError(t, err)

	return NewService(
		postgresql.NewEmployeeRepository(db),
		jwt.NewJWTService(testSecret, testAccessExp),
		emailService,
		config.AppConfig{FrontendURL: "http://localhost:3000"},
	)
}

func createAuthTestEmployee(t *testing.T, db *database.DB, emailAddr string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	var id string
	err = db.QueryRow(context.Background(), `
		INSERT INTO users (name, email, password_hash, employee_code, role, designation, base_salary, date_of_birth, gender, paid_leave_balance)
		VALUES ('Auth Tester', $1, $2, 'EMP-AUTH', 'Employee', 'Developer', 22000, '1995-04-12', 'Female', 1)
		RETURNING id
	`, emailAddr, string(hash)).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestAuthService_Login_Success(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)
	createAuthTestEmployee(t, db, "login@example.com")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "login@example.com",
		Password: testPassword,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "Auth Tester", resp.User.Name)
	assert.Equal(t, string(identity.RoleEmployee), resp.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)
	createAuthTestEmployee(t, db, "wrongpass@example.com")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "wrongpass@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	})

	// Unknown accounts and bad passwords are indistinguishable.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)
	id := createAuthTestEmployee(t, db, "change@example.com")
	caller := identity.Caller{UserID: id, Role: identity.RoleEmployee}

	err := svc.ChangePassword(context.Background(), caller, auth.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "brand-new-secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "change@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "change@example.com",
		Password: "brand-new-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)
	id := createAuthTestEmployee(t, db, "wrongcurrent@example.com")
	caller := identity.Caller{UserID: id, Role: identity.RoleEmployee}

	err := svc.ChangePassword(context.Background(), caller, auth.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "brand-new-secret",
	})

	assert.ErrorIs(t, err, auth.ErrWrongPassword)
}

func TestAuthService_ForgotThenResetPassword(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)
	id := createAuthTestEmployee(t, db, "forgot@example.com")

	err := svc.ForgotPassword(context.Background(), auth.ForgotPasswordRequest{
		Email: "forgot@example.com",
	})
	require.NoError(t, err)

	var token string
	err = db.QueryRow(context.Background(),
		`SELECT reset_token FROM users WHERE id = $1`, id).Scan(&token)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = svc.ResetPassword(context.Background(), token, auth.ResetPasswordRequest{
		NewPassword: "reset-secret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "forgot@example.com",
		Password: "reset-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// The token is single-use.
	err = svc.ResetPassword(context.Background(), token, auth.ResetPasswordRequest{
		NewPassword: "another-secret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_ForgotPassword_UnknownEmailSilent(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)

	err := svc.ForgotPassword(context.Background(), auth.ForgotPasswordRequest{
		Email: "ghost@example.com",
	})

	assert.NoError(t, err)
}

func TestAuthService_Verify(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(t, db)
	id := createAuthTestEmployee(t, db, "verify@example.com")

	profile, err := svc.Verify(context.Background(), identity.Caller{UserID: id, Role: identity.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, "Auth Tester", profile.Name)

	_, err = svc.Verify(context.Background(), identity.Caller{
		UserID: "00000000-0000-0000-0000-000000000000",
		Role:   identity.RoleEmployee,
	})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
