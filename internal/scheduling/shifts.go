package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// ShiftLookup read port for staff working hours.
// date is a local calendar date; only its year, month and day are used.
type ShiftLookup interface {
	ShiftFor(staffID int64, date time.Time) (domain.ShiftWindow, bool)
	IsManaged(staffID int64) bool
}

type shiftKey struct {
	staffID int64
	date    string
}

// ShiftTable in-memory ShiftLookup over a snapshot of shift windows
type ShiftTable struct {
	windows map[shiftKey]domain.ShiftWindow
	managed map[int64]struct{}
}

// NewShiftTable builds a lookup from loaded windows. managedStaffIDs lists staff
// that have shift rows outside the loaded range; every staff with a window is managed anyway.
func NewShiftTable(windows []domain.ShiftWindow, managedStaffIDs ...int64) *ShiftTable {
	t := &ShiftTable{
		windows: make(map[shiftKey]domain.ShiftWindow, len(windows)),
		managed: make(map[int64]struct{}, len(managedStaffIDs)),
	}
	for _, w := range windows {
		t.windows[shiftKey{staffID: w.StaffID, date: w.Date.Format(domain.DateFormat)}] = w
		t.managed[w.StaffID] = struct{}{}
	}
	for _, id := range managedStaffIDs {
		t.managed[id] = struct{}{}
	}
	return t
}

// ShiftFor returns the window of staffID on date
func (t *ShiftTable) ShiftFor(staffID int64, date time.Time) (domain.ShiftWindow, bool) {
	if t == nil {
		return domain.ShiftWindow{}, false
	}
	w, ok := t.windows[shiftKey{staffID: staffID, date: date.Format(domain.DateFormat)}]
	return w, ok
}

// IsManaged returns true if the staff member has at least one shift row
func (t *ShiftTable) IsManaged(staffID int64) bool {
	if t == nil {
		return false
	}
	_, ok := t.managed[staffID]
	return ok
}
