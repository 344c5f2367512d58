package copy_week_shifts

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts/models"
)

type ShiftService interface {
	CopyWeek(ctx context.Context, req *models.CopyWeekRequest) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
