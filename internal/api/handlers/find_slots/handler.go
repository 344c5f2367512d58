package find_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	findSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_slots"
)

const (
	msgInvalidQuery    = "некорректные параметры запроса: serviceId обязателен, date в формате YYYY-MM-DD"
	msgInvalidInput    = "некорректные параметры поиска"
	msgInvalidDate     = "дата поиска уже прошла"
	msgServiceNotFound = "услуга не найдена"
	msgStaffNotFound   = "сотрудник не найден"
	msgCabinNotFound   = "кабинет не найден"
)

type Handler struct {
	useCase FindSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?serviceId=&staffId=&cabinId=&date=&days=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid query %q: %v", r.URL.RawQuery, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, findSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date in the past: %s", r.URL.Query().Get("date"))
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, findSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, findSlots.ErrStaffNotFound):
			h.logger.Warn("GET /available-slots - Staff not found: staff_id=%d", *req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, findSlots.ErrCabinNotFound):
			h.logger.Warn("GET /available-slots - Cabin not found: cabin_id=%d", *req.CabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		default:
			h.logger.Error("GET /available-slots - Failed to find slots: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Found %d slots: service_id=%d", len(result.Slots), req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
