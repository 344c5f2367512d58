package upsert_shift

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректное время смены, ожидается HH:MM"
	msgInvalidShift       = "начало смены должно быть раньше конца"
	msgStaffNotFound      = "сотрудник не найден"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/shifts/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil || staffID <= 0 {
		h.logger.Warn("PUT /staff/{id}/shifts/{date} - Invalid staff ID: %s", vars["staffId"])
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/shifts/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpsertShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/shifts/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(staffID, date)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/shifts/{date} - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	shift, err := h.service.UpsertShift(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/{id}/shifts/{date} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, shifts.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/shifts/{date} - Invalid shift: %v", err)
			handlers.RespondBadRequest(w, msgInvalidShift)

		default:
			h.logger.Error("PUT /staff/{id}/shifts/{date} - Failed to upsert shift: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/shifts/{date} - Shift saved: staff_id=%d, date=%s", staffID, shift.Date)
	handlers.RespondJSON(w, http.StatusOK, shift)
}
