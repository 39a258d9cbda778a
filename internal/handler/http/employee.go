package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
	employeeService "github.com/leavehq/leave-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.EmployeeService
}

func NewEmployeeHandler(service *employeeService.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: service}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListFilter{
		Department: r.URL.Query().Get("department"),
		Search:     r.URL.Query().Get("search"),
	}

	employees, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponseList(employees))
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employee.ToResponse(emp))
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", employee.ToResponse(emp))
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	if err := h.employeeService.Delete(r.Context(), id, actorID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Departments implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.employeeService.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}
