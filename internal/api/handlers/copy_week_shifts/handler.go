package copy_week_shifts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWeek        = "недели должны различаться на целое число недель"
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

// Handle POST /api/v1/staff/{staffId}/shifts/copy-week
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil || staffID <= 0 {
		h.logger.Warn("POST /staff/{id}/shifts/copy-week - Invalid staff ID: %s", vars["staffId"])
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req CopyWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/shifts/copy-week - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/shifts/copy-week - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CopyWeek(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrInvalidWeek):
			h.logger.Warn("POST /staff/{id}/shifts/copy-week - Weeks not aligned: source=%s, target=%s",
				req.SourceWeekStart, req.TargetWeekStart)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		case errors.Is(err, shifts.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/shifts/copy-week - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("POST /staff/{id}/shifts/copy-week - Failed to copy week: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/shifts/copy-week - Copied %d shifts: staff_id=%d", len(result.Shifts), staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
