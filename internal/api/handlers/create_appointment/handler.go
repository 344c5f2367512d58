package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartsAt    = "некорректное время начала, ожидается RFC3339 со смещением таймзоны"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры записи"
	msgInPast             = "нельзя записаться на прошедшее время"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "сотрудник не найден"
	msgCabinNotFound      = "кабинет не найден"
	msgClientNotFound     = "клиент не найден"
	msgClientBlocked      = "клиенту запрещена запись"
	msgSlotTaken          = "выбранное время только что заняли"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid startsAt=%q: %v", req.StartsAt, err)
		handlers.RespondBadRequest(w, msgInvalidStartsAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *createAppointment.RejectionError
		switch {
		case errors.As(err, &rejection):
			h.logger.Warn("POST /appointments - Rejected: staff_id=%d, cabin_id=%d, reason=%s",
				req.StaffID, req.CabinID, rejection.Reason)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, fromRejection(rejection))

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken concurrently: staff_id=%d, cabin_id=%d", req.StaffID, req.CabinID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInPast):
			h.logger.Warn("POST /appointments - Start in the past: startsAt=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgInPast)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrCabinNotFound):
			h.logger.Warn("POST /appointments - Cabin not found: cabin_id=%d", req.CabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrClientBlocked):
			h.logger.Warn("POST /appointments - Client blocked: client_id=%d", req.ClientID)
			handlers.RespondForbidden(w, msgClientBlocked)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: staff_id=%d, cabin_id=%d, error=%v",
				req.StaffID, req.CabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, staff_id=%d, user_id=%d",
		result.ID, result.StaffID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
