package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/attendance-backend-go/internal/config"
)

func TestNewService_ParsesTemplates(t *testing.T) {
	svc, err := NewService(config.SMTPConfig{})

	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestSend_SkipsWhenUnconfigured(t *testing.T) {
	svc, err := NewService(config.SMTPConfig{})
	require.NoError(t, err)

	note := "enjoy your time off"

	assert.NoError(t, svc.SendLeaveRequest("admin@example.com", "Admin", "Casey", "Vacation", "2026-10-01", "2026-10-03", "family trip"))
	assert.NoError(t, svc.SendLeaveResponse("casey@example.com", "Casey", "Vacation", "2026-10-01", "2026-10-03", "Approved", &note))
	assert.NoError(t, svc.SendLeaveResponse("casey@example.com", "Casey", "Sick", "2026-10-05", "2026-10-05", "Rejected", nil))
	assert.NoError(t, svc.SendWelcome("new@example.com", "New Hire", "EMP-042"))
	assert.NoError(t, svc.SendProfileUpdated("casey@example.com", "Casey"))
	assert.NoError(t, svc.SendPasswordReset("casey@example.com", "http://localhost:3000/reset-password?token=abc", "Mon, 31 Aug 2026 12:00:00 UTC"))
}
