package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/leave"
	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
	leaveService "github.com/leavehq/leave-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	ListRequests(w http.ResponseWriter, r *http.Request)
	SubmitRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	ReviewRequest(w http.ResponseWriter, r *http.Request)

	ListBalances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	typeService    *leaveService.TypeService
	requestService *leaveService.RequestService
	balanceService *leaveService.BalanceService
}

func NewLeaveHandler(
	typeService *leaveService.TypeService,
	requestService *leaveService.RequestService,
	balanceService *leaveService.BalanceService,
) LeaveHandler {
	return &LeaveHandlerImpl{
		typeService:    typeService,
		requestService: requestService,
		balanceService: balanceService,
	}
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	var (
		types []leave.LeaveType
		err   error
	)

	if r.URL.Query().Get("all") == "true" {
		types, err = l.typeService.List(r.Context())
	} else {
		types, err = l.typeService.ListActive(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, leave.ToLeaveTypeResponse(t))
	}
	response.Success(w, out)
}

// CreateType implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	leaveType, err := l.typeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leave.ToLeaveTypeResponse(leaveType))
}

// UpdateType implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveTypeRequest

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	leaveType, err := l.typeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", leave.ToLeaveTypeResponse(leaveType))
}

// DeleteType implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := l.typeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

// ListRequests implements LeaveHandler. Regular employees only ever see
// their own requests; approvers may filter by employee.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	filter := leave.RequestFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
	}

	role, ok := roleFromContext(r)
	if !ok || !role.CanApprove() {
		filter.EmployeeID = employeeID
	}

	requests, err := l.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToRequestResponseList(requests))
}

// SubmitRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitRequest

	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.requestService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.ToRequestResponse(created))
}

// CancelRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	actorID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	cancelled, err := l.requestService.Cancel(r.Context(), id, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled successfully", leave.ToRequestResponse(cancelled))
}

// ReviewRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.ReviewRequest

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	reviewerID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReviewRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.RequestID = id
	req.ReviewerID = reviewerID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reviewed, err := l.requestService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed successfully", leave.ToRequestResponse(reviewed))
}

// ListBalances implements LeaveHandler. Regular employees only ever see
// their own balances.
func (l *LeaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil && y > 0 {
			year = y
		}
	}

	filter := leave.BalanceFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Department: r.URL.Query().Get("department"),
		Year:       year,
	}

	role, ok := roleFromContext(r)
	if !ok || !role.CanApprove() {
		filter.EmployeeID = employeeID
		filter.Department = ""
	}

	snapshot, err := l.balanceService.Snapshot(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
