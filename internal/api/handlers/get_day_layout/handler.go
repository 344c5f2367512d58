package get_day_layout

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	dayLayout "github.com/m04kA/SMC-SalonScheduler/internal/usecase/day_layout"
)

const (
	msgInvalidCabinID = "некорректный ID кабинета"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCabinNotFound  = "кабинет не найден"
)

type Handler struct {
	useCase DayLayoutUseCase
	logger  Logger
}

func NewHandler(useCase DayLayoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}/layout?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cabinID, err := strconv.ParseInt(mux.Vars(r)["cabinId"], 10, 64)
	if err != nil || cabinID <= 0 {
		h.logger.Warn("GET /cabins/{id}/layout - Invalid cabin ID: %s", mux.Vars(r)["cabinId"])
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/layout - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &dayLayout.Request{CabinID: cabinID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, dayLayout.ErrCabinNotFound):
			h.logger.Warn("GET /cabins/{id}/layout - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, dayLayout.ErrInvalidInput):
			h.logger.Warn("GET /cabins/{id}/layout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /cabins/{id}/layout - Failed to build layout: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cabins/{id}/layout - Layout built: cabin_id=%d, items=%d", cabinID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
