package find_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// Settings ограничения поиска из конфигурации
type Settings struct {
	DefaultHorizonDays int
	MaxHorizonDays     int
	MaxResults         int
}

// Request модель запроса на поиск свободных слотов
type Request struct {
	ServiceID int64
	StaffID   *int64    // Фильтр по сотруднику (опционально)
	CabinID   *int64    // Фильтр по кабинету (опционально)
	Date      time.Time // Первый день поиска (zero: сегодня)
	Days      int       // Горизонт в днях (0: по умолчанию, не больше максимума)
	Limit     int       // Количество результатов (0: максимум)
}

// Response модель ответа со списком слотов
type Response struct {
	ServiceID       int64
	DurationMinutes int
	From            time.Time
	Days            int
	Slots           []Slot
}

// Slot свободный слот
type Slot struct {
	Date      time.Time
	StartTime types.TimeString
	StartsAt  time.Time
	EndsAt    time.Time
	StaffID   int64
	StaffName string
	CabinID   int64
}
