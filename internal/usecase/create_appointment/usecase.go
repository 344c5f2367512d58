package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/clientservice"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	catalog         CatalogRepository
	clientService   ClientServiceClient
	txManager       TransactionManager
	validator       *scheduling.Validator
	location        *time.Location
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shiftRepo ShiftRepository,
	catalog CatalogRepository,
	clientService ClientServiceClient,
	txManager TransactionManager,
	location *time.Location,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		catalog:         catalog,
		clientService:   clientService,
		txManager:       txManager,
		validator:       scheduling.NewValidator(location),
		location:        location,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка графика и пересечений выполняется в сериализуемой транзакции,
// окончательную защиту от двойной записи даёт ограничение исключения в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, client=%d, staff=%d, cabin=%d, service=%d, startsAt=%s",
		req.UserID, req.ClientID, req.StaffID, req.CabinID, req.ServiceID, req.StartsAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Запись в прошлое запрещена
	now := uc.timeProvider.Now()
	if req.StartsAt.Before(now) {
		uc.logger.Warn("CreateAppointment: startsAt=%s is in the past", req.StartsAt.Format(time.RFC3339))
		return nil, ErrInPast
	}

	// 3. Получаем услугу, она задаёт длительность записи
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if err := validateDuration(service.DurationMinutes); err != nil {
		uc.logger.Error("CreateAppointment: service id=%d: %v", req.ServiceID, err)
		return nil, err
	}

	interval, err := domain.NewTimeInterval(req.StartsAt, req.StartsAt.Add(time.Duration(service.DurationMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Проверяем сотрудника и кабинет
	if err := uc.ensureStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}
	if err := uc.ensureCabin(ctx, req.CabinID); err != nil {
		return nil, err
	}

	// 5. Проверяем клиента (при недоступности справочника продолжаем без проверки)
	if _, err := uc.clientService.GetClientWithGracefulDegradation(ctx, req.ClientID); err != nil {
		switch {
		case errors.Is(err, clientservice.ErrClientNotFound):
			return nil, ErrClientNotFound
		case errors.Is(err, clientservice.ErrClientBlocked):
			return nil, ErrClientBlocked
		case errors.Is(err, clientservice.ErrServiceDegraded):
			uc.logger.Warn("CreateAppointment: client id=%d not verified: %v", req.ClientID, err)
		default:
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	from, to := searchWindow(interval, uc.location)

	var result *domain.Appointment

	// 6. Проверка и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. График сотрудника на дату записи
		windows, err := uc.shiftRepo.ListByStaffRange(txCtx, []int64{req.StaffID}, from, from.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("%w: failed to get shifts: %w", ErrInternal, err)
		}
		managed, err := uc.shiftRepo.ListManagedStaffIDs(txCtx, []int64{req.StaffID})
		if err != nil {
			return fmt.Errorf("%w: failed to get managed staff: %w", ErrInternal, err)
		}
		shifts := scheduling.NewShiftTable(windows, managed...)

		// 6.2. Активные записи сотрудника и кабинета с блокировкой (FOR UPDATE)
		staffAppointments, err := uc.appointmentRepo.ListWithFilter(txCtx, domain.AppointmentsFilter{
			StaffIDs: []int64{req.StaffID},
			From:     &from,
			To:       &to,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get staff appointments: %w", ErrInternal, err)
		}
		cabinAppointments, err := uc.appointmentRepo.ListWithFilter(txCtx, domain.AppointmentsFilter{
			CabinID: &req.CabinID,
			From:    &from,
			To:      &to,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get cabin appointments: %w", ErrInternal, err)
		}

		// 6.3. График и пересечения у сотрудника
		res, err := uc.validator.Validate(scheduling.Candidate{StaffID: req.StaffID, Interval: interval}, shifts, staffAppointments)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !res.OK() {
			return uc.reject(res)
		}

		// 6.4. Занятость кабинета
		if res := uc.validator.CheckCabin(req.CabinID, interval, cabinAppointments); !res.OK() {
			return uc.reject(res)
		}

		// 6.5. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			StaffID:   req.StaffID,
			CabinID:   req.CabinID,
			ClientID:  req.ClientID,
			ServiceID: req.ServiceID,
			StartsAt:  interval.Start,
			EndsAt:    interval.End,
			Status:    domain.StatusPending,
			Notes:     req.Notes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrRejected):
		case errors.Is(err, ErrSlotTaken):
			uc.logger.Warn("CreateAppointment: slot taken concurrently, staff=%d, cabin=%d", req.StaffID, req.CabinID)
		default:
			uc.logger.Error("CreateAppointment: %v", err)
			if !errors.Is(err, ErrInternal) && !errors.Is(err, ErrInvalidInput) {
				err = fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		StaffID:         result.StaffID,
		CabinID:         result.CabinID,
		ServiceID:       result.ServiceID,
		StartsAt:        result.StartsAt,
		EndsAt:          result.EndsAt,
		DurationMinutes: service.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) reject(res scheduling.Result) error {
	uc.logger.Warn("CreateAppointment: rejected, reason=%s: %s", res.Reason, res.Message)
	uc.metrics.ObserveRejection(string(res.Reason))
	return newRejectionError(res)
}

func (uc *UseCase) ensureStaff(ctx context.Context, staffID int64) error {
	staff, err := uc.catalog.GetStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", staffID)
			return ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.Active {
		uc.logger.Warn("CreateAppointment: staff id=%d is inactive", staffID)
		return ErrStaffNotFound
	}
	return nil
}

func (uc *UseCase) ensureCabin(ctx context.Context, cabinID int64) error {
	cabin, err := uc.catalog.GetCabin(ctx, cabinID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCabinNotFound) {
			uc.logger.Warn("CreateAppointment: cabin id=%d not found", cabinID)
			return ErrCabinNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get cabin id=%d: %v", cabinID, err)
		return fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}
	if !cabin.Active {
		uc.logger.Warn("CreateAppointment: cabin id=%d is inactive", cabinID)
		return ErrCabinNotFound
	}
	return nil
}
