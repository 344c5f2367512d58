package get_day_layout

import (
	"context"

	dayLayout "github.com/m04kA/SMC-SalonScheduler/internal/usecase/day_layout"
)

type DayLayoutUseCase interface {
	Execute(ctx context.Context, req *dayLayout.Request) (*dayLayout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
