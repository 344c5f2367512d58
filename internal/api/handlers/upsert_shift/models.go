package upsert_shift

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts/models"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// UpsertShiftRequest HTTP request model
type UpsertShiftRequest struct {
	IsWorkingDay bool   `json:"isWorkingDay"`
	StartTime    string `json:"startTime,omitempty"` // "10:00"
	EndTime      string `json:"endTime,omitempty"`   // "19:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertShiftRequest) ToServiceRequest(staffID int64, date time.Time) (*models.UpsertShiftRequest, error) {
	req := &models.UpsertShiftRequest{
		StaffID:      staffID,
		Date:         date,
		IsWorkingDay: r.IsWorkingDay,
	}
	if !r.IsWorkingDay {
		return req, nil
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}
	req.StartTime = start
	req.EndTime = end
	return req, nil
}
