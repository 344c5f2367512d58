package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID  int64   `json:"clientId"`
	StaffID   int64   `json:"staffId"`
	CabinID   int64   `json:"cabinId"`
	ServiceID int64   `json:"serviceId"`
	StartsAt  string  `json:"startsAt"` // "2025-10-15T10:00:00+03:00"
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	StaffID         int64   `json:"staffId"`
	CabinID         int64   `json:"cabinId"`
	ServiceID       int64   `json:"serviceId"`
	StartsAt        string  `json:"startsAt"`
	EndsAt          string  `json:"endsAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// RejectionResponse тело 422 с причиной отказа
type RejectionResponse struct {
	Error        string `json:"error"`
	Reason       string `json:"reason"`
	ConflictWith *int64 `json:"conflictWith,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// startsAt обязан содержать смещение таймзоны.
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:    userID,
		ClientID:  r.ClientID,
		StaffID:   r.StaffID,
		CabinID:   r.CabinID,
		ServiceID: r.ServiceID,
		StartsAt:  startsAt,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		StaffID:         resp.StaffID,
		CabinID:         resp.CabinID,
		ServiceID:       resp.ServiceID,
		StartsAt:        resp.StartsAt.Format(time.RFC3339),
		EndsAt:          resp.EndsAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

func fromRejection(rej *createAppointment.RejectionError) *RejectionResponse {
	resp := &RejectionResponse{
		Error:  rej.Message,
		Reason: string(rej.Reason),
	}
	if rej.ConflictWith != 0 {
		conflictWith := rej.ConflictWith
		resp.ConflictWith = &conflictWith
	}
	return resp
}
