package day_layout

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Request запрос раскладки записей кабинета на день
type Request struct {
	CabinID int64
	Date    time.Time // Учитывается только календарная дата
}

// Response раскладка дня
type Response struct {
	CabinID int64
	Date    time.Time
	Items   []Item
}

// Item одна карточка записи в календаре
type Item struct {
	AppointmentID int64
	StaffID       int64
	ClientID      int64
	StartsAt      time.Time
	EndsAt        time.Time
	Status        domain.AppointmentStatus
	ColumnIndex   int
	ColumnCount   int
	WidthPercent  float64
	OffsetPercent float64
}
