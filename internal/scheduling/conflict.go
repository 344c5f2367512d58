package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// RejectionReason machine-readable cause of a rejected candidate
type RejectionReason string

const (
	ReasonNotWorkingDay     RejectionReason = "not_working_day"
	ReasonOutsideShiftHours RejectionReason = "outside_shift_hours"
	ReasonNoShiftAssigned   RejectionReason = "no_shift_assigned"
	ReasonOverlap           RejectionReason = "overlap_detected"
	ReasonCabinOccupied     RejectionReason = "cabin_occupied"
)

// Candidate proposed appointment of one staff member
type Candidate struct {
	StaffID  int64
	Interval domain.TimeInterval
}

// Result outcome of a validation. The zero value means accepted.
type Result struct {
	Reason       RejectionReason
	Message      string
	ConflictWith int64 // ID пересекающейся записи, если причина в пересечении
}

// OK returns true if the candidate was accepted
func (r Result) OK() bool {
	return r.Reason == ""
}

// Validator checks shift compliance and double booking. Wall-clock rules are
// evaluated in the salon time zone.
type Validator struct {
	loc *time.Location
}

// NewValidator создает валидатор для таймзоны салона (nil: UTC)
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{loc: loc}
}

// Validate decides whether the candidate may be booked.
// existing may contain appointments of other staff and cancelled ones; both are ignored.
func (v *Validator) Validate(c Candidate, shifts ShiftLookup, existing []*domain.Appointment) (Result, error) {
	if c.StaffID <= 0 {
		return Result{}, ErrInvalidStaff
	}
	if err := c.Interval.Validate(); err != nil {
		return Result{}, err
	}

	// Шаг 1: соответствие графику
	if res := v.checkShift(c, shifts); !res.OK() {
		return res, nil
	}

	// Шаг 2: пересечение с записями того же сотрудника
	conflict := FindOverlap(c.Interval, existing, func(a *domain.Appointment) bool {
		return a.StaffID == c.StaffID
	})
	if conflict != nil {
		return Result{
			Reason: ReasonOverlap,
			Message: fmt.Sprintf("staff already has appointment %d at %s-%s",
				conflict.ID, v.clock(conflict.StartsAt), v.clock(conflict.EndsAt)),
			ConflictWith: conflict.ID,
		}, nil
	}

	return Result{}, nil
}

// CheckCabin rejects the interval if the cabin already hosts a non-cancelled appointment at that time
func (v *Validator) CheckCabin(cabinID int64, interval domain.TimeInterval, existing []*domain.Appointment) Result {
	conflict := FindOverlap(interval, existing, func(a *domain.Appointment) bool {
		return a.CabinID == cabinID
	})
	if conflict == nil {
		return Result{}
	}
	return Result{
		Reason: ReasonCabinOccupied,
		Message: fmt.Sprintf("cabin is occupied by appointment %d at %s-%s",
			conflict.ID, v.clock(conflict.StartsAt), v.clock(conflict.EndsAt)),
		ConflictWith: conflict.ID,
	}
}

func (v *Validator) checkShift(c Candidate, shifts ShiftLookup) Result {
	start := c.Interval.Start.In(v.loc)
	date := civilDate(start, v.loc)

	var window domain.ShiftWindow
	found := false
	if shifts != nil {
		window, found = shifts.ShiftFor(c.StaffID, date)
	}

	if !found {
		if shifts != nil && shifts.IsManaged(c.StaffID) {
			return Result{
				Reason:  ReasonNoShiftAssigned,
				Message: fmt.Sprintf("no shift assigned for %s", date.Format(domain.DateFormat)),
			}
		}
		// Сотрудник без графика: проверка смены не выполняется
		return Result{}
	}

	if !window.IsWorkingDay {
		return Result{
			Reason:  ReasonNotWorkingDay,
			Message: fmt.Sprintf("staff does not work on %s", date.Format(domain.DateFormat)),
		}
	}

	startMin, endMin := minutesOfDay(c.Interval, v.loc)
	if !window.Covers(startMin, endMin) {
		return Result{
			Reason: ReasonOutsideShiftHours,
			Message: fmt.Sprintf("appointment %s-%s is outside shift hours %s-%s",
				v.clock(c.Interval.Start), v.clock(c.Interval.End), window.Start, window.End),
		}
	}
	return Result{}
}

func (v *Validator) clock(t time.Time) string {
	return types.NewTimeString(t.In(v.loc)).String()
}

// FindOverlap returns the first occupying appointment accepted by match whose interval
// intersects interval, or nil
func FindOverlap(interval domain.TimeInterval, appointments []*domain.Appointment, match func(*domain.Appointment) bool) *domain.Appointment {
	for _, a := range appointments {
		if a == nil || !a.OccupiesSlot() || !match(a) {
			continue
		}
		if a.Interval().Overlaps(interval) {
			return a
		}
	}
	return nil
}

// minutesOfDay converts an interval to local minute-of-day bounds of its start date.
// The end may exceed 1440 when the interval crosses midnight. Seconds round outwards.
func minutesOfDay(interval domain.TimeInterval, loc *time.Location) (int, int) {
	start := interval.Start.In(loc)
	end := interval.End.In(loc)

	startMin := start.Hour()*60 + start.Minute()

	endMin := end.Hour()*60 + end.Minute()
	if end.Second() > 0 || end.Nanosecond() > 0 {
		endMin++
	}
	endMin += daysBetween(civilDate(start, loc), civilDate(end, loc)) * types.MinutesPerDay

	return startMin, endMin
}

// civilDate local midnight of t's calendar date
func civilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
