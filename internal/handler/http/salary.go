package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/salary"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	MySalary(w http.ResponseWriter, r *http.Request)
	ForEmployee(w http.ResponseWriter, r *http.Request)
	ForAll(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.Service
}

func NewSalaryHandler(salaryService salary.Service) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// MySalary implements SalaryHandler.
func (h *salaryHandlerImpl) MySalary(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := monthRequestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.ForEmployee(r.Context(), caller.UserID, req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ForEmployee implements SalaryHandler.
func (h *salaryHandlerImpl) ForEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := monthRequestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.ForEmployee(r.Context(), id, req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ForAll implements SalaryHandler.
func (h *salaryHandlerImpl) ForAll(w http.ResponseWriter, r *http.Request) {
	req, err := monthRequestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.ForAllEmployees(r.Context(), req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func monthRequestFromQuery(r *http.Request) (salary.MonthRequest, error) {
	var req salary.MonthRequest

	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err == nil {
			req.Month = month
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err == nil {
			req.Year = year
		}
	}

	req.Normalize(time.Now())
	if err := req.Validate(); err != nil {
		return salary.MonthRequest{}, err
	}

	return req, nil
}
