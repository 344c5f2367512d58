package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// ErrInvalidShift возвращается для рабочего дня с пустым или перевёрнутым интервалом
var ErrInvalidShift = errors.New("domain: shift start must be before end on a working day")

// ShiftWindow one staff member's working hours on one calendar date.
// Date carries no time component; Start and End are local wall-clock times.
type ShiftWindow struct {
	ID           int64
	StaffID      int64
	Date         time.Time
	IsWorkingDay bool
	Start        types.TimeString
	End          types.TimeString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks that a working day has a non-empty window
func (s *ShiftWindow) Validate() error {
	if !s.IsWorkingDay {
		return nil
	}
	if s.Start.IsZero() || s.End.IsZero() || !s.Start.IsBefore(s.End) {
		return ErrInvalidShift
	}
	return nil
}

// Covers returns true if [startMinute, endMinute] lies inside the window (bounds inclusive)
func (s *ShiftWindow) Covers(startMinute, endMinute int) bool {
	return startMinute >= s.Start.Minutes() && endMinute <= s.End.Minutes()
}
