package models

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	UserID             int64   `json:"-"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"` // Только для status=cancelled
}

// ListAppointmentsRequest запрос на получение записей с фильтрацией
type ListAppointmentsRequest struct {
	StaffID          *int64
	CabinID          *int64
	From             *time.Time
	To               *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		CabinID:          r.CabinID,
		From:             r.From,
		To:               r.To,
		IncludeCancelled: r.IncludeCancelled,
	}
	if r.StaffID != nil {
		filter.StaffIDs = []int64{*r.StaffID}
	}

	if r.Status != nil {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		if status == domain.StatusCancelled {
			filter.IncludeCancelled = true
		}
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                 int64     `json:"id"`
	StaffID            int64     `json:"staffId"`
	CabinID            int64     `json:"cabinId"`
	ClientID           int64     `json:"clientId"`
	ServiceID          int64     `json:"serviceId"`
	StartsAt           time.Time `json:"startsAt"`
	EndsAt             time.Time `json:"endsAt"`
	Status             string    `json:"status"`
	Notes              *string   `json:"notes,omitempty"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		StaffID:            a.StaffID,
		CabinID:            a.CabinID,
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		StartsAt:           a.StartsAt,
		EndsAt:             a.EndsAt,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
