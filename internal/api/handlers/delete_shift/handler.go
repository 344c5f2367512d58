package delete_shift

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
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound  = "сотрудник не найден"
	msgShiftNotFound  = "смена не найдена"
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

// Handle DELETE /api/v1/staff/{staffId}/shifts/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil || staffID <= 0 {
		h.logger.Warn("DELETE /staff/{id}/shifts/{date} - Invalid staff ID: %s", vars["staffId"])
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/shifts/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteShift(r.Context(), staffID, date); err != nil {
		switch {
		case errors.Is(err, shifts.ErrStaffNotFound):
			h.logger.Warn("DELETE /staff/{id}/shifts/{date} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, shifts.ErrShiftNotFound):
			h.logger.Warn("DELETE /staff/{id}/shifts/{date} - Shift not found: staff_id=%d, date=%s", staffID, vars["date"])
			handlers.RespondNotFound(w, msgShiftNotFound)

		default:
			h.logger.Error("DELETE /staff/{id}/shifts/{date} - Failed to delete shift: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id}/shifts/{date} - Shift deleted: staff_id=%d, date=%s", staffID, vars["date"])
	w.WriteHeader(http.StatusNoContent)
}
