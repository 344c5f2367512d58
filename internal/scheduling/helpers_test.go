package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

var salonLoc = time.FixedZone("MSK", 3*60*60)

// at returns the salon-local instant of day 2025-03-<day> hh:mm
func at(day, hh, mm int) time.Time {
	return time.Date(2025, time.March, day, hh, mm, 0, 0, salonLoc)
}

func interval(start, end time.Time) domain.TimeInterval {
	return domain.TimeInterval{Start: start, End: end}
}

func appointment(id, staffID, cabinID int64, start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:       id,
		StaffID:  staffID,
		CabinID:  cabinID,
		StartsAt: start,
		EndsAt:   end,
		Status:   status,
	}
}

func workingShift(staffID int64, day int, start, end string) domain.ShiftWindow {
	return domain.ShiftWindow{
		StaffID:      staffID,
		Date:         time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
		IsWorkingDay: true,
		Start:        types.MustTimeString(start),
		End:          types.MustTimeString(end),
	}
}

func dayOff(staffID int64, day int) domain.ShiftWindow {
	return domain.ShiftWindow{
		StaffID: staffID,
		Date:    time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
	}
}
