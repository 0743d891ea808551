package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/project"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	MyProjects(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created", result)
}

// Get implements ProjectHandler.
func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ProjectHandler.
func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.UpdateProject(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated", result)
}

// Delete implements ProjectHandler.
func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.projectService.DeleteProject(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted", nil)
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Assign implements ProjectHandler.
func (h *projectHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req project.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.AssignEmployees(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project assignments updated", result)
}

// MyProjects implements ProjectHandler.
func (h *projectHandlerImpl) MyProjects(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.projectService.MyProjects(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
