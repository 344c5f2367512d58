package create_appointment

import (
	"time"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64     // ID администратора (X-User-ID), только для логирования
	ClientID  int64     // ID клиента салона
	StaffID   int64     // ID сотрудника
	CabinID   int64     // ID кабинета
	ServiceID int64     // ID услуги, задаёт длительность
	StartsAt  time.Time // Начало записи с явной таймзоной
	Notes     *string   // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientID        int64
	StaffID         int64
	CabinID         int64
	ServiceID       int64
	StartsAt        time.Time
	EndsAt          time.Time
	DurationMinutes int
	Status          string
	ServiceName     string
	ServicePrice    float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
