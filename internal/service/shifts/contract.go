package shifts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListByStaffRange(ctx context.Context, staffIDs []int64, from, to time.Time) ([]domain.ShiftWindow, error)
	Upsert(ctx context.Context, window *domain.ShiftWindow) (*domain.ShiftWindow, error)
	Delete(ctx context.Context, staffID int64, date time.Time) error
}

// StaffRepository интерфейс справочника сотрудников
type StaffRepository interface {
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
