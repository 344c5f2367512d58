package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

func TestShiftWindow_Validate(t *testing.T) {
	day := ShiftWindow{IsWorkingDay: true, Start: types.MustTimeString("10:00"), End: types.MustTimeString("18:00")}
	assert.NoError(t, day.Validate())
	assert.True(t, day.Covers(600, 1080))
	assert.False(t, day.Covers(599, 630))
	assert.False(t, day.Covers(1050, 1081))

	inverted := ShiftWindow{IsWorkingDay: true, Start: types.MustTimeString("18:00"), End: types.MustTimeString("10:00")}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidShift)

	dayOff := ShiftWindow{IsWorkingDay: false}
	assert.NoError(t, dayOff.Validate())
}
