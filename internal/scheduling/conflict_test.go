package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

func TestValidate_ShiftScenario(t *testing.T) {
	v := NewValidator(salonLoc)
	shifts := NewShiftTable([]domain.ShiftWindow{workingShift(1, 10, "10:00", "18:00")})
	existing := []*domain.Appointment{
		appointment(100, 1, 1, at(10, 10, 0), at(10, 10, 30), domain.StatusConfirmed),
	}

	tests := []struct {
		name      string
		candidate domain.TimeInterval
		reason    RejectionReason
	}{
		{name: "touching boundary accepted", candidate: interval(at(10, 10, 30), at(10, 11, 0))},
		{name: "overlap rejected", candidate: interval(at(10, 10, 0), at(10, 10, 45)), reason: ReasonOverlap},
		{name: "outside shift rejected", candidate: interval(at(10, 18, 0), at(10, 18, 30)), reason: ReasonOutsideShiftHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.Validate(Candidate{StaffID: 1, Interval: tt.candidate}, shifts, existing)
			require.NoError(t, err)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, tt.reason == "", res.OK())
		})
	}
}

func TestValidate_ShiftBoundsInclusive(t *testing.T) {
	v := NewValidator(salonLoc)
	shifts := NewShiftTable([]domain.ShiftWindow{workingShift(1, 10, "10:00", "18:00")})

	res, err := v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 10, 0), at(10, 18, 0))}, shifts, nil)
	require.NoError(t, err)
	assert.True(t, res.OK())

	res, err = v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 9, 59), at(10, 12, 0))}, shifts, nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonOutsideShiftHours, res.Reason)
	assert.Contains(t, res.Message, "10:00-18:00")

	res, err = v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 17, 0), at(10, 18, 1))}, shifts, nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonOutsideShiftHours, res.Reason)
}

func TestValidate_ComparesLocalWallClock(t *testing.T) {
	v := NewValidator(salonLoc)
	shifts := NewShiftTable([]domain.ShiftWindow{workingShift(1, 10, "10:00", "18:00")})

	// 07:00 UTC is 10:00 in the salon
	start := time.Date(2025, time.March, 10, 7, 0, 0, 0, time.UTC)
	res, err := v.Validate(Candidate{StaffID: 1, Interval: interval(start, start.Add(time.Hour))}, shifts, nil)
	require.NoError(t, err)
	assert.True(t, res.OK())
}

func TestValidate_CrossingMidnightIsOutsideShift(t *testing.T) {
	v := NewValidator(salonLoc)
	shifts := NewShiftTable([]domain.ShiftWindow{workingShift(1, 10, "10:00", "24:00")})

	res, err := v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 23, 30), at(11, 0, 0))}, shifts, nil)
	require.NoError(t, err)
	assert.True(t, res.OK(), "ending exactly at 24:00 fits")

	res, err = v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 23, 30), at(11, 0, 30))}, shifts, nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonOutsideShiftHours, res.Reason)
}

func TestValidate_ShiftStates(t *testing.T) {
	v := NewValidator(salonLoc)
	shifts := NewShiftTable([]domain.ShiftWindow{
		dayOff(1, 10),
		workingShift(1, 11, "10:00", "18:00"),
	})

	res, err := v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 12, 0), at(10, 13, 0))}, shifts, nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonNotWorkingDay, res.Reason)

	res, err = v.Validate(Candidate{StaffID: 1, Interval: interval(at(12, 12, 0), at(12, 13, 0))}, shifts, nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoShiftAssigned, res.Reason)
	assert.Contains(t, res.Message, "2025-03-12")
}

func TestValidate_ManagedOutsideLoadedRange(t *testing.T) {
	v := NewValidator(salonLoc)
	shifts := NewShiftTable(nil, 7)

	res, err := v.Validate(Candidate{StaffID: 7, Interval: interval(at(10, 12, 0), at(10, 13, 0))}, shifts, nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoShiftAssigned, res.Reason)
}

func TestValidate_UnmanagedStaffBypassesShifts(t *testing.T) {
	v := NewValidator(salonLoc)
	shifts := NewShiftTable([]domain.ShiftWindow{workingShift(1, 10, "10:00", "18:00")})

	for day := 1; day <= 31; day++ {
		candidate := Candidate{StaffID: 2, Interval: interval(at(day, 6, 0), at(day, 23, 0))}

		res, err := v.Validate(candidate, shifts, nil)
		require.NoError(t, err)
		assert.True(t, res.OK(), "day %d", day)

		res, err = v.Validate(candidate, nil, nil)
		require.NoError(t, err)
		assert.True(t, res.OK(), "nil lookup, day %d", day)
	}
}

func TestValidate_IgnoresCancelledAndOtherStaff(t *testing.T) {
	v := NewValidator(salonLoc)
	existing := []*domain.Appointment{
		appointment(1, 1, 1, at(10, 12, 0), at(10, 13, 0), domain.StatusCancelled),
		appointment(2, 2, 1, at(10, 12, 0), at(10, 13, 0), domain.StatusConfirmed),
		appointment(3, 1, 1, at(10, 14, 0), at(10, 15, 0), domain.StatusNoShow),
	}

	res, err := v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 12, 0), at(10, 13, 0))}, nil, existing)
	require.NoError(t, err)
	assert.True(t, res.OK())

	res, err = v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 14, 30), at(10, 15, 30))}, nil, existing)
	require.NoError(t, err)
	assert.Equal(t, ReasonOverlap, res.Reason)
	assert.Equal(t, int64(3), res.ConflictWith)
}

func TestValidate_InvalidInput(t *testing.T) {
	v := NewValidator(salonLoc)

	_, err := v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 12, 0), at(10, 12, 0))}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = v.Validate(Candidate{StaffID: 1, Interval: interval(at(10, 13, 0), at(10, 12, 0))}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = v.Validate(Candidate{StaffID: 0, Interval: interval(at(10, 12, 0), at(10, 13, 0))}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidStaff)
}

func TestCheckCabin(t *testing.T) {
	v := NewValidator(salonLoc)
	existing := []*domain.Appointment{
		appointment(5, 3, 2, at(10, 12, 0), at(10, 13, 0), domain.StatusPaid),
	}

	res := v.CheckCabin(2, interval(at(10, 12, 30), at(10, 13, 30)), existing)
	assert.Equal(t, ReasonCabinOccupied, res.Reason)
	assert.Equal(t, int64(5), res.ConflictWith)

	assert.True(t, v.CheckCabin(1, interval(at(10, 12, 30), at(10, 13, 30)), existing).OK())
	assert.True(t, v.CheckCabin(2, interval(at(10, 13, 0), at(10, 14, 0)), existing).OK())
}

func TestOverlapSymmetry(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	base := at(10, 0, 0)

	for i := 0; i < 1000; i++ {
		aStart := rnd.Intn(600)
		bStart := rnd.Intn(600)
		a := interval(base.Add(time.Duration(aStart)*time.Minute), base.Add(time.Duration(aStart+1+rnd.Intn(120))*time.Minute))
		b := interval(base.Add(time.Duration(bStart)*time.Minute), base.Add(time.Duration(bStart+1+rnd.Intn(120))*time.Minute))

		require.Equal(t, a.Overlaps(b), b.Overlaps(a))
	}
}
