package shifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	shiftRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/shift"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts/models"
)

// Service сервис редактирования графиков работы сотрудников
type Service struct {
	shiftRepo ShiftRepository
	staffRepo StaffRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, staffRepo StaffRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		staffRepo: staffRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// UpsertShift устанавливает смену сотрудника на дату.
// Для выходного дня время начала и конца не сохраняется.
func (s *Service) UpsertShift(ctx context.Context, req *models.UpsertShiftRequest) (*models.ShiftResponse, error) {
	s.logger.Info("UpsertShift: staff=%d, date=%s, working=%t, time=%s-%s",
		req.StaffID, req.Date.Format(domain.DateFormat), req.IsWorkingDay, req.StartTime, req.EndTime)

	if err := s.ensureStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	window := &domain.ShiftWindow{
		StaffID:      req.StaffID,
		Date:         dateOnly(req.Date),
		IsWorkingDay: req.IsWorkingDay,
	}
	if req.IsWorkingDay {
		window.Start = req.StartTime
		window.End = req.EndTime
	}
	if err := window.Validate(); err != nil {
		s.logger.Warn("UpsertShift: invalid window for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.shiftRepo.Upsert(ctx, window)
	if err != nil {
		s.logger.Error("UpsertShift: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: UpsertShift - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainShift(saved)
	return &resp, nil
}

// CopyWeek копирует семь дней графика, начиная с SourceWeekStart, на неделю с TargetWeekStart.
// Дни без смены в исходной неделе не меняют целевую неделю.
func (s *Service) CopyWeek(ctx context.Context, req *models.CopyWeekRequest) (*models.ShiftListResponse, error) {
	source := dateOnly(req.SourceWeekStart)
	target := dateOnly(req.TargetWeekStart)
	s.logger.Info("CopyWeek: staff=%d, source=%s, target=%s",
		req.StaffID, source.Format(domain.DateFormat), target.Format(domain.DateFormat))

	offsetDays := int(target.Sub(source).Hours() / 24)
	if offsetDays == 0 || offsetDays%domain.DaysPerWeek != 0 {
		s.logger.Warn("CopyWeek: weeks are not aligned, offset=%d days", offsetDays)
		return nil, ErrInvalidWeek
	}

	if err := s.ensureStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	resp := &models.ShiftListResponse{Shifts: make([]models.ShiftResponse, 0, domain.DaysPerWeek)}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		windows, err := s.shiftRepo.ListByStaffRange(txCtx, []int64{req.StaffID}, source, source.AddDate(0, 0, domain.DaysPerWeek))
		if err != nil {
			return fmt.Errorf("%w: CopyWeek - list source week: %v", ErrInternal, err)
		}

		for _, w := range windows {
			copied := &domain.ShiftWindow{
				StaffID:      w.StaffID,
				Date:         dateOnly(w.Date).AddDate(0, 0, offsetDays),
				IsWorkingDay: w.IsWorkingDay,
			}
			if w.IsWorkingDay {
				copied.Start = w.Start
				copied.End = w.End
			}

			saved, err := s.shiftRepo.Upsert(txCtx, copied)
			if err != nil {
				return fmt.Errorf("%w: CopyWeek - upsert %s: %v", ErrInternal, copied.Date.Format(domain.DateFormat), err)
			}
			resp.Shifts = append(resp.Shifts, models.FromDomainShift(saved))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CopyWeek: staff=%d: %v", req.StaffID, err)
		return nil, err
	}

	s.logger.Info("CopyWeek: copied %d shifts for staff=%d", len(resp.Shifts), req.StaffID)
	return resp, nil
}

// DeleteShift удаляет смену сотрудника на дату.
// Если у сотрудника не осталось ни одной смены, он снова работает по часам салона.
func (s *Service) DeleteShift(ctx context.Context, staffID int64, date time.Time) error {
	date = dateOnly(date)
	s.logger.Info("DeleteShift: staff=%d, date=%s", staffID, date.Format(domain.DateFormat))

	if err := s.ensureStaff(ctx, staffID); err != nil {
		return err
	}

	if err := s.shiftRepo.Delete(ctx, staffID, date); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("DeleteShift: no shift for staff=%d on %s", staffID, date.Format(domain.DateFormat))
			return ErrShiftNotFound
		}
		s.logger.Error("DeleteShift: repository error for staff=%d: %v", staffID, err)
		return fmt.Errorf("%w: DeleteShift - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) ensureStaff(ctx context.Context, staffID int64) error {
	if staffID <= 0 {
		return fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}
	if _, err := s.staffRepo.GetStaff(ctx, staffID); err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			s.logger.Warn("Shifts: staff id=%d not found", staffID)
			return ErrStaffNotFound
		}
		return fmt.Errorf("%w: get staff: %v", ErrInternal, err)
	}
	return nil
}

// dateOnly отбрасывает время, сохраняя календарную дату
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
