package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// ListAppointments получает записи с фильтрацией по сотруднику, кабинету, периоду и статусу
func (s *Service) ListAppointments(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := "ListAppointments: fetching appointments"
	if req.StaffID != nil {
		logMsg += fmt.Sprintf(", staff=%d", *req.StaffID)
	}
	if req.CabinID != nil {
		logMsg += fmt.Sprintf(", cabin=%d", *req.CabinID)
	}
	if req.From != nil && req.To != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info("%s", logMsg)

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListAppointments: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAppointments: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus переводит запись в новый статус.
// Допустимые переходы: pending -> confirmed|paid|cancelled|no_show, confirmed -> paid|cancelled|no_show.
// Отмена освобождает сотрудника и кабинет.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d", id, req.Status, req.UserID)

	next, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.Appointment
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !appointment.CanTransitionTo(next) {
			s.logger.Warn("UpdateStatus: appointment id=%d cannot move from %s to %s", id, appointment.Status, next)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, next)
		}

		if next == domain.StatusCancelled {
			err = s.appointmentRepo.Cancel(txCtx, id, req.CancellationReason)
			appointment.CancellationReason = req.CancellationReason
		} else {
			err = s.appointmentRepo.UpdateStatus(txCtx, id, next)
		}
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		appointment.Status = next
		result = appointment
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateStatus: appointment id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, next)
	return models.FromDomainAppointment(result), nil
}
