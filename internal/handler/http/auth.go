package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/auth"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// Verify implements AuthHandler.
func (h *authHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.Verify(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ChangePassword implements AuthHandler.
func (h *authHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), caller, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed", nil)
}

// ForgotPassword implements AuthHandler.
func (h *authHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "If the email exists, a reset link has been sent", nil)
}

// ResetPassword implements AuthHandler.
func (h *authHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req auth.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), token, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password has been reset", nil)
}
