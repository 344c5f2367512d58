package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.CabinID <= 0 {
		return fmt.Errorf("%w: cabinId must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDuration проверяет длительность услуги
func validateDuration(minutes int) error {
	if minutes <= 0 || minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: service duration %d minutes is out of range", ErrInternal, minutes)
	}
	return nil
}

// searchWindow границы выборки записей и смен: локальные сутки начала записи,
// расширенные до конца записи, если она переходит через полночь
func searchWindow(interval domain.TimeInterval, loc *time.Location) (time.Time, time.Time) {
	y, m, d := interval.Start.In(loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)
	if interval.End.After(to) {
		to = interval.End
	}
	return from, to
}
