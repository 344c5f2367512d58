package upsert_shift

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/shifts/models"
)

type ShiftService interface {
	UpsertShift(ctx context.Context, req *models.UpsertShiftRequest) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
