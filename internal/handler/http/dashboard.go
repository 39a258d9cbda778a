package http

import (
	"net/http"

	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
	dashboardService "github.com/leavehq/leave-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardService.DashboardService
}

func NewDashboardHandler(service *dashboardService.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: service}
}

// Get implements DashboardHandler. The view depends on the caller's
// role: approvers get the org-wide version, everyone else their own.
func (h *DashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	role, ok := roleFromContext(r)
	if ok && role.CanApprove() {
		view, err := h.dashboardService.ForAdmin(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, view)
		return
	}

	view, err := h.dashboardService.ForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}
