package http

import (
	"net/http"
	"strconv"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	LunchStart(w http.ResponseWriter, r *http.Request)
	LunchEnd(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// PunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.PunchIn(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in", result)
}

// LunchStart implements AttendanceHandler.
func (h *attendanceHandlerImpl) LunchStart(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.LunchStart(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch break started", result)
}

// LunchEnd implements AttendanceHandler.
func (h *attendanceHandlerImpl) LunchEnd(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.LunchEnd(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch break ended", result)
}

// PunchOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.PunchOut(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Today(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			response.BadRequest(w, "limit must be a non-negative integer", nil)
			return
		}
	}

	result, err := h.attendanceService.History(r.Context(), caller.UserID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
