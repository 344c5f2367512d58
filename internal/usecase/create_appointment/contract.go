package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/clientservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListByStaffRange(ctx context.Context, staffIDs []int64, from, to time.Time) ([]domain.ShiftWindow, error)
	ListManagedStaffIDs(ctx context.Context, staffIDs []int64) ([]int64, error)
}

// CatalogRepository интерфейс справочников салона
type CatalogRepository interface {
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	GetCabin(ctx context.Context, id int64) (*domain.Cabin, error)
	GetService(ctx context.Context, id int64) (*domain.ServiceSpec, error)
}

// ClientServiceClient интерфейс клиента справочника клиентов
type ClientServiceClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*clientservice.SalonClient, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчик отклонённых записей по причинам
type MetricsRecorder interface {
	ObserveRejection(reason string)
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
