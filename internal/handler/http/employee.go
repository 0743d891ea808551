package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	MyMonthlyStats(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), caller, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), caller, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Profile implements EmployeeHandler.
func (h *employeeHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.GetProfile(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateProfile(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}

// MonthlyStats implements EmployeeHandler.
func (h *employeeHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetMonthlyStats(r.Context(), id, monthParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyMonthlyStats implements EmployeeHandler.
func (h *employeeHandlerImpl) MyMonthlyStats(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.GetMonthlyStats(r.Context(), caller.UserID, monthParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func monthParam(r *http.Request) string {
	if month := r.URL.Query().Get("month"); month != "" {
		return month
	}
	return time.Now().Format("2006-01")
}
