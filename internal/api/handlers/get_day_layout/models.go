package get_day_layout

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	dayLayout "github.com/m04kA/SMC-SalonScheduler/internal/usecase/day_layout"
)

// LayoutResponse HTTP response model
type LayoutResponse struct {
	CabinID int64            `json:"cabinId"`
	Date    string           `json:"date"`
	Items   []LayoutItemJSON `json:"items"`
}

// LayoutItemJSON карточка записи с позицией в колонке кабинета
type LayoutItemJSON struct {
	AppointmentID int64   `json:"appointmentId"`
	StaffID       int64   `json:"staffId"`
	ClientID      int64   `json:"clientId"`
	StartsAt      string  `json:"startsAt"`
	EndsAt        string  `json:"endsAt"`
	Status        string  `json:"status"`
	ColumnIndex   int     `json:"columnIndex"`
	ColumnCount   int     `json:"columnCount"`
	WidthPercent  float64 `json:"widthPercent"`
	OffsetPercent float64 `json:"offsetPercent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *dayLayout.Response) *LayoutResponse {
	out := &LayoutResponse{
		CabinID: resp.CabinID,
		Date:    resp.Date.Format(domain.DateFormat),
		Items:   make([]LayoutItemJSON, 0, len(resp.Items)),
	}
	for _, item := range resp.Items {
		out.Items = append(out.Items, LayoutItemJSON{
			AppointmentID: item.AppointmentID,
			StaffID:       item.StaffID,
			ClientID:      item.ClientID,
			StartsAt:      item.StartsAt.Format(time.RFC3339),
			EndsAt:        item.EndsAt.Format(time.RFC3339),
			Status:        string(item.Status),
			ColumnIndex:   item.ColumnIndex,
			ColumnCount:   item.ColumnCount,
			WidthPercent:  item.WidthPercent,
			OffsetPercent: item.OffsetPercent,
		})
	}
	return out
}
