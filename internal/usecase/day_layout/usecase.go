package day_layout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
)

// UseCase use case для построения раскладки календаря кабинета
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         CatalogRepository
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		location:        location,
		logger:          logger,
	}
}

// Execute раскладывает записи кабинета за день по колонкам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if req.CabinID <= 0 {
		return nil, fmt.Errorf("%w: cabinId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	dayEnd := dayStart.AddDate(0, 0, 1)
	uc.logger.Info("DayLayout: cabin=%d, date=%s", req.CabinID, dayStart.Format(domain.DateFormat))

	// 2. Кабинет должен существовать
	if _, err := uc.catalog.GetCabin(ctx, req.CabinID); err != nil {
		if errors.Is(err, catalogRepo.ErrCabinNotFound) {
			uc.logger.Warn("DayLayout: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("DayLayout: failed to get cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}

	// 3. Записи кабинета, пересекающие день
	cabinID := req.CabinID
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		CabinID: &cabinID,
		From:    &dayStart,
		To:      &dayEnd,
	})
	if err != nil {
		uc.logger.Error("DayLayout: failed to list appointments for cabin=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	active := make([]*domain.Appointment, 0, len(appointments))
	byID := make(map[int64]*domain.Appointment, len(appointments))
	for _, a := range appointments {
		if !a.OccupiesSlot() {
			continue
		}
		active = append(active, a)
		byID[a.ID] = a
	}

	// 4. Раскладка
	response := &Response{
		CabinID: req.CabinID,
		Date:    dayStart,
		Items:   make([]Item, 0, len(active)),
	}
	for _, slot := range scheduling.Pack(active) {
		a := byID[slot.AppointmentID]
		response.Items = append(response.Items, Item{
			AppointmentID: a.ID,
			StaffID:       a.StaffID,
			ClientID:      a.ClientID,
			StartsAt:      a.StartsAt,
			EndsAt:        a.EndsAt,
			Status:        a.Status,
			ColumnIndex:   slot.ColumnIndex,
			ColumnCount:   slot.ColumnCount,
			WidthPercent:  slot.WidthPercent(),
			OffsetPercent: slot.OffsetPercent(),
		})
	}

	uc.logger.Info("DayLayout: cabin=%d, date=%s, %d appointments", req.CabinID, dayStart.Format(domain.DateFormat), len(response.Items))
	return response, nil
}
