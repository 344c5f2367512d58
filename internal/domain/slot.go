package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// AvailableSlot represents a free start time for a service with a concrete staff member and cabin
type AvailableSlot struct {
	Date      time.Time        // Календарная дата слота (локальная полночь)
	StartTime types.TimeString // Локальное время начала
	StartsAt  time.Time
	EndsAt    time.Time
	StaffID   int64
	CabinID   int64
}

// LayoutSlot position of one appointment in a cabin day view
type LayoutSlot struct {
	AppointmentID int64
	ColumnIndex   int
	ColumnCount   int
}

// WidthPercent ширина карточки записи в процентах от ширины колонки кабинета
func (l LayoutSlot) WidthPercent() float64 {
	if l.ColumnCount == 0 {
		return 100
	}
	return 100 / float64(l.ColumnCount)
}

// OffsetPercent горизонтальное смещение карточки в процентах
func (l LayoutSlot) OffsetPercent() float64 {
	return float64(l.ColumnIndex) * l.WidthPercent()
}
