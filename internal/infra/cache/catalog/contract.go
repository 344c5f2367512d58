package catalog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Source источник справочников (репозиторий БД)
type Source interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	ListCabins(ctx context.Context) ([]domain.Cabin, error)
	GetCabin(ctx context.Context, id int64) (*domain.Cabin, error)
	GetService(ctx context.Context, id int64) (*domain.ServiceSpec, error)
}

// RedisClient подмножество *redis.Client, используемое кешем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
