package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/holiday"
	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
	holidayService "github.com/leavehq/leave-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService *holidayService.HolidayService
}

func NewHolidayHandler(service *holidayService.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: service}
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := 0
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 {
			response.BadRequest(w, "year must be a positive integer", nil)
			return
		}
		year = y
	}

	holidays, err := h.holidayService.List(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holiday.ToResponseList(holidays))
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", holiday.ToResponse(created))
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}
