package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	MyBalance(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	MonthlyReset(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit implements LeaveHandler.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.SubmitRequest(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// MyRequests implements LeaveHandler.
func (h *leaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.MyRequests(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyBalance implements LeaveHandler.
func (h *leaveHandlerImpl) MyBalance(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.MyBalance(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Pending implements LeaveHandler.
func (h *leaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.PendingRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Respond implements LeaveHandler.
func (h *leaveHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")

	var req leave.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.RespondToRequest(r.Context(), caller, requestID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated", result)
}

// MonthlyReset implements LeaveHandler. The cron scheduler drives the
// same service method on month change; this endpoint is the manual
// trigger.
func (h *leaveHandlerImpl) MonthlyReset(w http.ResponseWriter, r *http.Request) {
	updated, err := h.leaveService.MonthlyReset(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Paid leave credited", map[string]int{"employees_updated": updated})
}
