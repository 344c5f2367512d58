package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidStatus возвращается при неизвестном статусе записи
var ErrInvalidStatus = errors.New("domain: invalid appointment status")

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPaid      AppointmentStatus = "paid"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// allowedTransitions допустимые переходы статусов. paid, cancelled и no_show конечные.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusPaid, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusPaid, StatusCancelled, StatusNoShow},
}

// ParseAppointmentStatus конвертирует строку в статус записи
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCancelled, StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Appointment represents a client visit booked with one staff member in one cabin
type Appointment struct {
	ID        int64
	StaffID   int64
	CabinID   int64
	ClientID  int64
	ServiceID int64
	StartsAt  time.Time
	EndsAt    time.Time
	Status    AppointmentStatus

	Notes              *string
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the time range occupied by the appointment
func (a *Appointment) Interval() TimeInterval {
	return TimeInterval{Start: a.StartsAt, End: a.EndsAt}
}

// OccupiesSlot returns true if the appointment blocks its staff member and cabin.
// Every status except cancelled occupies the slot.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// CanTransitionTo returns true if the appointment may move to next
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StaffIDs         []int64            // Фильтр по сотрудникам (пусто: все)
	CabinID          *int64             // Фильтр по кабинету (опционально)
	From             *time.Time         // Записи, заканчивающиеся после From
	To               *time.Time         // Записи, начинающиеся до To
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые записи
}
