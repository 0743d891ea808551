package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Service defines the interface for sending emails
type Service interface {
	SendLeaveRequest(to, adminName, employeeName, leaveType, startDate, endDate, reason string) error
	SendLeaveResponse(to, employeeName, leaveType, startDate, endDate, status string, note *string) error
	SendWelcome(to, employeeName, employeeCode string) error
	SendProfileUpdated(to, employeeName string) error
	SendPasswordReset(to, resetLink, expiresAt string) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewService creates a new email service instance
func NewService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveRequestEmailData struct {
	AdminName    string
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Reason       string
}

// SendLeaveRequest notifies an admin that a new leave request is pending
func (s *serviceImpl) SendLeaveRequest(to, adminName, employeeName, leaveType, startDate, endDate, reason string) error {
	data := leaveRequestEmailData{
		AdminName:    adminName,
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       reason,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_request.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("New Leave Request from %s", employeeName), body.String())
}

type leaveResponseEmailData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Status       string
	Note         string
}

// SendLeaveResponse notifies an employee of the decision on their request
func (s *serviceImpl) SendLeaveResponse(to, employeeName, leaveType, startDate, endDate, status string, note *string) error {
	data := leaveResponseEmailData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
	}
	if note != nil {
		data.Note = *note
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_response.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your Leave Request Has Been %s", status), body.String())
}

type welcomeEmailData struct {
	EmployeeName string
	EmployeeCode string
}

// SendWelcome greets a newly registered employee
func (s *serviceImpl) SendWelcome(to, employeeName, employeeCode string) error {
	data := welcomeEmailData{
		EmployeeName: employeeName,
		EmployeeCode: employeeCode,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Welcome to StaffDesk", body.String())
}

type profileUpdatedEmailData struct {
	EmployeeName string
}

// SendProfileUpdated tells an employee their record was changed by an admin
func (s *serviceImpl) SendProfileUpdated(to, employeeName string) error {
	data := profileUpdatedEmailData{EmployeeName: employeeName}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "profile_updated.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your Profile Has Been Updated", body.String())
}

type passwordResetEmailData struct {
	ResetLink string
	ExpiresAt string
}

// SendPasswordReset sends a password reset email to the user
func (s *serviceImpl) SendPasswordReset(to, resetLink, expiresAt string) error {
	data := passwordResetEmailData{
		ResetLink: resetLink,
		ExpiresAt: expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "password_reset.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Reset Password", body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
