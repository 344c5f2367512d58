package scheduling

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/ptr"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

func newTestFinder(t *testing.T, open, closeTime string, step int) *Finder {
	t.Helper()
	f, err := NewFinder(FinderConfig{
		Location:     salonLoc,
		StepMinutes:  step,
		DefaultOpen:  types.MustTimeString(open),
		DefaultClose: types.MustTimeString(closeTime),
	})
	require.NoError(t, err)
	return f
}

func startTimes(slots []domain.AvailableSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, fmt.Sprintf("%s %s s%d c%d", s.Date.Format(domain.DateFormat), s.StartTime, s.StaffID, s.CabinID))
	}
	return out
}

func TestNewFinder_Invalid(t *testing.T) {
	_, err := NewFinder(FinderConfig{StepMinutes: 0, DefaultOpen: types.MustTimeString("10:00"), DefaultClose: types.MustTimeString("20:00")})
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = NewFinder(FinderConfig{StepMinutes: 15, DefaultOpen: types.MustTimeString("20:00"), DefaultClose: types.MustTimeString("10:00")})
	assert.ErrorIs(t, err, ErrInvalidWorkingHours)
}

func TestFindSlots_InvalidRequest(t *testing.T) {
	f := newTestFinder(t, "10:00", "12:00", 30)

	_, err := f.FindSlots(SearchRequest{DurationMinutes: 0, StartDate: at(10, 0, 0), HorizonDays: 1}, Inventory{})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = f.FindSlots(SearchRequest{DurationMinutes: 60, StartDate: at(10, 0, 0), HorizonDays: 0}, Inventory{})
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestFindSlots_UnmanagedStaffUseOpeningHours(t *testing.T) {
	f := newTestFinder(t, "10:00", "12:00", 30)
	inv := Inventory{
		Staff:  []domain.Staff{{ID: 1, Name: "Anna", Active: true}},
		Cabins: []domain.Cabin{{ID: 1, Name: "Blue", Active: true}},
	}

	slots, err := f.FindSlots(SearchRequest{DurationMinutes: 60, StartDate: at(10, 15, 0), HorizonDays: 2}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-10 10:00 s1 c1",
		"2025-03-10 10:30 s1 c1",
		"2025-03-10 11:00 s1 c1",
		"2025-03-11 10:00 s1 c1",
		"2025-03-11 10:30 s1 c1",
		"2025-03-11 11:00 s1 c1",
	}, startTimes(slots))

	first := slots[0]
	assert.True(t, first.StartsAt.Equal(at(10, 10, 0)))
	assert.True(t, first.EndsAt.Equal(at(10, 11, 0)))
}

func TestFindSlots_SkipsStaffOverlaps(t *testing.T) {
	f := newTestFinder(t, "10:00", "12:00", 30)
	inv := Inventory{
		Staff:  []domain.Staff{{ID: 1, Name: "Anna", Active: true}},
		Cabins: []domain.Cabin{{ID: 1, Active: true}},
		Appointments: []*domain.Appointment{
			appointment(1, 1, 9, at(10, 10, 30), at(10, 11, 0), domain.StatusPending),
			appointment(2, 1, 9, at(10, 11, 0), at(10, 12, 0), domain.StatusCancelled),
		},
	}

	slots, err := f.FindSlots(SearchRequest{DurationMinutes: 30, StartDate: at(10, 0, 0), HorizonDays: 1}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-10 10:00 s1 c1",
		"2025-03-10 11:00 s1 c1",
		"2025-03-10 11:30 s1 c1",
	}, startTimes(slots))
}

func TestFindSlots_CabinPairing(t *testing.T) {
	f := newTestFinder(t, "10:00", "11:00", 30)
	inv := Inventory{
		Staff:  []domain.Staff{{ID: 1, Name: "Anna", Active: true}},
		Cabins: []domain.Cabin{{ID: 2, Active: true}, {ID: 1, Active: true}},
		Appointments: []*domain.Appointment{
			appointment(1, 5, 1, at(10, 10, 0), at(10, 10, 30), domain.StatusConfirmed),
		},
	}

	slots, err := f.FindSlots(SearchRequest{DurationMinutes: 30, StartDate: at(10, 0, 0), HorizonDays: 1}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-10 10:00 s1 c2",
		"2025-03-10 10:30 s1 c1",
	}, startTimes(slots), "first free cabin by id")

	slots, err = f.FindSlots(SearchRequest{DurationMinutes: 30, CabinID: ptr.Ptr(int64(1)), StartDate: at(10, 0, 0), HorizonDays: 1}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10 10:30 s1 c1"}, startTimes(slots), "filtered cabin busy at 10:00")
}

func TestFindSlots_StaffNameTieBreak(t *testing.T) {
	f := newTestFinder(t, "10:00", "11:00", 60)
	inv := Inventory{
		Staff: []domain.Staff{
			{ID: 1, Name: "Olga", Active: true},
			{ID: 2, Name: "Anna", Active: true},
			{ID: 3, Name: "Maria", Active: false},
		},
		Cabins: []domain.Cabin{{ID: 1, Active: true}, {ID: 2, Active: true}},
	}

	slots, err := f.FindSlots(SearchRequest{DurationMinutes: 60, StartDate: at(10, 0, 0), HorizonDays: 1}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-10 10:00 s2 c1",
		"2025-03-10 10:00 s1 c1",
	}, startTimes(slots))
}

func TestFindSlots_ManagedStaffFollowShifts(t *testing.T) {
	f := newTestFinder(t, "10:00", "20:00", 60)
	inv := Inventory{
		Staff:  []domain.Staff{{ID: 1, Name: "Anna", Active: true}},
		Cabins: []domain.Cabin{{ID: 1, Active: true}},
		Shifts: NewShiftTable([]domain.ShiftWindow{
			workingShift(1, 10, "14:00", "16:00"),
			dayOff(1, 11),
		}),
	}

	slots, err := f.FindSlots(SearchRequest{DurationMinutes: 60, StartDate: at(10, 0, 0), HorizonDays: 3}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-10 14:00 s1 c1",
		"2025-03-10 15:00 s1 c1",
	}, startTimes(slots), "day off and unassigned day yield nothing")
}

func TestFindSlots_DurationLongerThanShift(t *testing.T) {
	f := newTestFinder(t, "10:00", "20:00", 15)
	inv := Inventory{
		Staff: []domain.Staff{
			{ID: 1, Name: "Anna", Active: true},
			{ID: 2, Name: "Boris", Active: true},
		},
		Cabins: []domain.Cabin{{ID: 1, Active: true}},
		Shifts: NewShiftTable([]domain.ShiftWindow{workingShift(1, 10, "10:00", "11:00")}),
	}

	slots, err := f.FindSlots(SearchRequest{DurationMinutes: 120, StaffID: ptr.Ptr(int64(1)), StartDate: at(10, 0, 0), HorizonDays: 1}, inv)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = f.FindSlots(SearchRequest{DurationMinutes: 120, StartDate: at(10, 0, 0), HorizonDays: 1, Limit: 1}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10 10:00 s2 c1"}, startTimes(slots), "search moves on to other staff")
}

func TestFindSlots_UnknownFiltersGiveEmptyResult(t *testing.T) {
	f := newTestFinder(t, "10:00", "20:00", 15)
	inv := Inventory{
		Staff:  []domain.Staff{{ID: 1, Name: "Anna", Active: true}},
		Cabins: []domain.Cabin{{ID: 1, Active: true}},
	}

	slots, err := f.FindSlots(SearchRequest{DurationMinutes: 60, StaffID: ptr.Ptr(int64(99)), StartDate: at(10, 0, 0), HorizonDays: 1}, inv)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)

	slots, err = f.FindSlots(SearchRequest{DurationMinutes: 60, CabinID: ptr.Ptr(int64(99)), StartDate: at(10, 0, 0), HorizonDays: 1}, inv)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = f.FindSlots(SearchRequest{DurationMinutes: 60, StartDate: at(10, 0, 0), HorizonDays: 1}, Inventory{Staff: inv.Staff})
	require.NoError(t, err)
	assert.Empty(t, slots, "no cabins")
}

func TestFindSlots_LimitAndNotBefore(t *testing.T) {
	f := newTestFinder(t, "10:00", "20:00", 15)
	inv := Inventory{
		Staff:  []domain.Staff{{ID: 1, Name: "Anna", Active: true}},
		Cabins: []domain.Cabin{{ID: 1, Active: true}},
	}

	slots, err := f.FindSlots(SearchRequest{
		DurationMinutes: 60,
		StartDate:       at(10, 0, 0),
		HorizonDays:     14,
		Limit:           3,
		NotBefore:       at(10, 19, 1),
	}, inv)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-11 10:00 s1 c1",
		"2025-03-11 10:15 s1 c1",
		"2025-03-11 10:30 s1 c1",
	}, startTimes(slots))
}

func TestFindSlots_NeverReturnsOverlappingSlot(t *testing.T) {
	f := newTestFinder(t, "09:00", "21:00", 15)

	for seed := int64(1); seed <= 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))

		staff := make([]domain.Staff, 0, 4)
		for id := int64(1); id <= 4; id++ {
			staff = append(staff, domain.Staff{ID: id, Name: fmt.Sprintf("staff-%d", rnd.Intn(3)), Active: true})
		}
		cabins := []domain.Cabin{{ID: 1, Active: true}, {ID: 2, Active: true}}

		windows := make([]domain.ShiftWindow, 0)
		for day := 1; day <= 7; day++ {
			if rnd.Intn(4) == 0 {
				windows = append(windows, dayOff(1, day))
				continue
			}
			open := 9 + rnd.Intn(3)
			windows = append(windows, workingShift(1, day, fmt.Sprintf("%02d:00", open), fmt.Sprintf("%02d:00", open+6+rnd.Intn(4))))
		}

		appointments := make([]*domain.Appointment, 0)
		for i := 0; i < 60; i++ {
			day := 1 + rnd.Intn(7)
			start := at(day, 9, 0).Add(time.Duration(rnd.Intn(48)*15) * time.Minute)
			statuses := []domain.AppointmentStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusPaid, domain.StatusNoShow, domain.StatusCancelled}
			appointments = append(appointments, appointment(
				int64(i+1),
				int64(1+rnd.Intn(4)),
				int64(1+rnd.Intn(2)),
				start,
				start.Add(time.Duration(15+rnd.Intn(8)*15)*time.Minute),
				statuses[rnd.Intn(len(statuses))],
			))
		}

		inv := Inventory{Staff: staff, Cabins: cabins, Shifts: NewShiftTable(windows), Appointments: appointments}
		duration := 30 + rnd.Intn(4)*15

		slots, err := f.FindSlots(SearchRequest{DurationMinutes: duration, StartDate: at(1, 0, 0), HorizonDays: 7}, inv)
		require.NoError(t, err)

		for i, s := range slots {
			assert.Equal(t, time.Duration(duration)*time.Minute, s.EndsAt.Sub(s.StartsAt))
			for _, a := range appointments {
				if !a.OccupiesSlot() {
					continue
				}
				if a.StaffID == s.StaffID || a.CabinID == s.CabinID {
					require.False(t, a.Interval().Overlaps(domain.TimeInterval{Start: s.StartsAt, End: s.EndsAt}),
						"seed %d: slot %s overlaps appointment %d", seed, startTimes(slots[i:i+1]), a.ID)
				}
			}
			if i > 0 {
				require.False(t, s.StartsAt.Before(slots[i-1].StartsAt), "seed %d: slots out of order", seed)
			}
		}
	}
}
