package find_slots

import (
	"context"

	findSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_slots"
)

type FindSlotsUseCase interface {
	Execute(ctx context.Context, req *findSlots.Request) (*findSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
