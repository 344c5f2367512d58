package copy_week_shifts

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts/models"
)

// CopyWeekRequest HTTP request model
type CopyWeekRequest struct {
	SourceWeekStart string `json:"sourceWeekStart"` // "2025-10-13"
	TargetWeekStart string `json:"targetWeekStart"` // "2025-10-20"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CopyWeekRequest) ToServiceRequest(staffID int64) (*models.CopyWeekRequest, error) {
	source, err := time.Parse(domain.DateFormat, r.SourceWeekStart)
	if err != nil {
		return nil, err
	}
	target, err := time.Parse(domain.DateFormat, r.TargetWeekStart)
	if err != nil {
		return nil, err
	}

	return &models.CopyWeekRequest{
		StaffID:         staffID,
		SourceWeekStart: source,
		TargetWeekStart: target,
	}, nil
}
