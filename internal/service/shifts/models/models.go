package models

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// UpsertShiftRequest запрос на установку смены сотрудника на дату
type UpsertShiftRequest struct {
	StaffID      int64
	Date         time.Time
	IsWorkingDay bool             `json:"isWorkingDay"`
	StartTime    types.TimeString `json:"startTime"`
	EndTime      types.TimeString `json:"endTime"`
}

// CopyWeekRequest запрос на копирование недельного графика
type CopyWeekRequest struct {
	StaffID         int64
	SourceWeekStart time.Time
	TargetWeekStart time.Time
}

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ID           int64   `json:"id"`
	StaffID      int64   `json:"staffId"`
	Date         string  `json:"date"` // "2025-10-15"
	IsWorkingDay bool    `json:"isWorkingDay"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
}

// ShiftListResponse ответ со списком смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// FromDomainShift конвертирует domain модель в DTO
func FromDomainShift(w *domain.ShiftWindow) ShiftResponse {
	resp := ShiftResponse{
		ID:           w.ID,
		StaffID:      w.StaffID,
		Date:         w.Date.Format(domain.DateFormat),
		IsWorkingDay: w.IsWorkingDay,
	}
	if w.IsWorkingDay {
		start, end := w.Start.String(), w.End.String()
		resp.StartTime = &start
		resp.EndTime = &end
	}
	return resp
}
