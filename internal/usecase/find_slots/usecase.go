package find_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
)

// UseCase use case для поиска свободных слотов
type UseCase struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	catalog         CatalogRepository
	finder          *scheduling.Finder
	location        *time.Location
	settings        Settings
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shiftRepo ShiftRepository,
	catalog CatalogRepository,
	finder *scheduling.Finder,
	location *time.Location,
	settings Settings,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		catalog:         catalog,
		finder:          finder,
		location:        location,
		settings:        settings,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет поиск свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindSlots: service=%d, staff=%s, cabin=%s, date=%s, days=%d, limit=%d",
		req.ServiceID, optionalID(req.StaffID), optionalID(req.CabinID), req.Date.Format(domain.DateFormat), req.Days, req.Limit)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Горизонт и дата начала
	now := uc.timeProvider.Now().In(uc.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.location)
	from := today
	if !req.Date.IsZero() {
		from = time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
		if from.Before(today) {
			uc.logger.Warn("FindSlots: date=%s is in the past", from.Format(domain.DateFormat))
			return nil, ErrInvalidDate
		}
	}
	days := clamp(req.Days, uc.settings.DefaultHorizonDays, uc.settings.MaxHorizonDays)
	limit := clamp(req.Limit, uc.settings.MaxResults, uc.settings.MaxResults)
	to := from.AddDate(0, 0, days)

	// 3. Услуга
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("FindSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("FindSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Сотрудники и кабинеты
	staff, err := uc.catalog.ListStaff(ctx)
	if err != nil {
		uc.logger.Error("FindSlots: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	cabins, err := uc.catalog.ListCabins(ctx)
	if err != nil {
		uc.logger.Error("FindSlots: failed to list cabins: %v", err)
		return nil, fmt.Errorf("%w: failed to list cabins: %v", ErrInternal, err)
	}

	staffIDs := make([]int64, 0, len(staff))
	names := make(map[int64]string, len(staff))
	for _, s := range staff {
		if req.StaffID != nil && s.ID != *req.StaffID {
			continue
		}
		staffIDs = append(staffIDs, s.ID)
		names[s.ID] = s.Name
	}
	if req.StaffID != nil && len(staffIDs) == 0 {
		uc.logger.Warn("FindSlots: staff id=%d not found", *req.StaffID)
		return nil, ErrStaffNotFound
	}
	if req.CabinID != nil && !containsCabin(cabins, *req.CabinID) {
		uc.logger.Warn("FindSlots: cabin id=%d not found", *req.CabinID)
		return nil, ErrCabinNotFound
	}

	response := &Response{
		ServiceID:       service.ID,
		DurationMinutes: service.DurationMinutes,
		From:            from,
		Days:            days,
		Slots:           make([]Slot, 0),
	}
	if len(staffIDs) == 0 || len(cabins) == 0 {
		uc.metrics.ObserveSlotSearch(0)
		return response, nil
	}

	// 5. Смены и записи за горизонт
	windows, err := uc.shiftRepo.ListByStaffRange(ctx, staffIDs, from, to)
	if err != nil {
		uc.logger.Error("FindSlots: failed to get shifts: %v", err)
		return nil, fmt.Errorf("%w: failed to get shifts: %v", ErrInternal, err)
	}
	managed, err := uc.shiftRepo.ListManagedStaffIDs(ctx, staffIDs)
	if err != nil {
		uc.logger.Error("FindSlots: failed to get managed staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get managed staff: %v", ErrInternal, err)
	}
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{From: &from, To: &to})
	if err != nil {
		uc.logger.Error("FindSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Поиск
	slots, err := uc.finder.FindSlots(scheduling.SearchRequest{
		DurationMinutes: service.DurationMinutes,
		StaffID:         req.StaffID,
		CabinID:         req.CabinID,
		StartDate:       from,
		HorizonDays:     days,
		Limit:           limit,
		NotBefore:       now,
	}, scheduling.Inventory{
		Staff:        staff,
		Cabins:       cabins,
		Shifts:       scheduling.NewShiftTable(windows, managed...),
		Appointments: appointments,
	})
	if err != nil {
		uc.logger.Error("FindSlots: search failed for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: search failed: %v", ErrInternal, err)
	}

	for _, s := range slots {
		response.Slots = append(response.Slots, Slot{
			Date:      s.Date,
			StartTime: s.StartTime,
			StartsAt:  s.StartsAt,
			EndsAt:    s.EndsAt,
			StaffID:   s.StaffID,
			StaffName: names[s.StaffID],
			CabinID:   s.CabinID,
		})
	}

	uc.metrics.ObserveSlotSearch(len(response.Slots))
	uc.logger.Info("FindSlots: found %d slots for service=%d", len(response.Slots), req.ServiceID)
	return response, nil
}

func containsCabin(cabins []domain.Cabin, id int64) bool {
	for _, c := range cabins {
		if c.ID == id {
			return true
		}
	}
	return false
}

func optionalID(id *int64) string {
	if id == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *id)
}
