package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
	reportService "github.com/leavehq/leave-backend-go/internal/service/report"
)

type ReportHandler interface {
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	DepartmentReport(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportService.ReportService
}

func NewReportHandler(service *reportService.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: service}
}

// EmployeeReport implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")

	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a positive integer", nil)
		return
	}

	rows, err := h.reportService.EmployeeReport(r.Context(), department, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// DepartmentReport implements ReportHandler.
func (h *ReportHandlerImpl) DepartmentReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.DepartmentReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// MonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a positive integer", nil)
		return
	}

	report, err := h.reportService.MonthlyReport(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func yearParam(r *http.Request) (int, bool) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return 0, false
	}
	return year, true
}
