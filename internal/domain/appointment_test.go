package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentStatus(t *testing.T) {
	status, err := ParseAppointmentStatus("no_show")
	require.NoError(t, err)
	assert.Equal(t, StatusNoShow, status)

	_, err = ParseAppointmentStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusNoShow, true},
		{StatusConfirmed, StatusPaid, true},
		{StatusConfirmed, StatusPending, false},
		{StatusPaid, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_OccupiesSlot(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusPaid, StatusNoShow} {
		a := &Appointment{Status: status}
		assert.True(t, a.OccupiesSlot(), status)
	}
	assert.False(t, (&Appointment{Status: StatusCancelled}).OccupiesSlot())
}

func TestTimeInterval(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	_, err := NewTimeInterval(at(30), at(30))
	assert.ErrorIs(t, err, ErrInvalidInterval)
	_, err = NewTimeInterval(at(30), at(0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	a, err := NewTimeInterval(at(0), at(30))
	require.NoError(t, err)
	b := TimeInterval{Start: at(30), End: at(60)}
	assert.False(t, a.Overlaps(b), "touching endpoints")
	assert.False(t, b.Overlaps(a))

	outer := TimeInterval{Start: at(0), End: at(60)}
	inner := TimeInterval{Start: at(20), End: at(40)}
	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
	assert.Equal(t, time.Hour, outer.Duration())
}

func TestTimeInterval_ComparesInstantsAcrossZones(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	a := TimeInterval{
		Start: time.Date(2025, 3, 10, 13, 0, 0, 0, moscow),
		End:   time.Date(2025, 3, 10, 14, 0, 0, 0, moscow),
	}
	b := TimeInterval{
		Start: time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC),
	}
	assert.True(t, a.Overlaps(b))
}

func TestLayoutSlot_Geometry(t *testing.T) {
	slot := LayoutSlot{ColumnIndex: 1, ColumnCount: 4}
	assert.InDelta(t, 25.0, slot.WidthPercent(), 1e-9)
	assert.InDelta(t, 25.0, slot.OffsetPercent(), 1e-9)
	assert.InDelta(t, 100.0, LayoutSlot{}.WidthPercent(), 1e-9)
}
