package find_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListByStaffRange(ctx context.Context, staffIDs []int64, from, to time.Time) ([]domain.ShiftWindow, error)
	ListManagedStaffIDs(ctx context.Context, staffIDs []int64) ([]int64, error)
}

// CatalogRepository интерфейс справочников салона (обычно кеш поверх БД)
type CatalogRepository interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	ListCabins(ctx context.Context) ([]domain.Cabin, error)
	GetService(ctx context.Context, id int64) (*domain.ServiceSpec, error)
}

// MetricsRecorder гистограмма размера выдачи
type MetricsRecorder interface {
	ObserveSlotSearch(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
