package delete_shift

import (
	"context"
	"time"
)

type ShiftService interface {
	DeleteShift(ctx context.Context, staffID int64, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
