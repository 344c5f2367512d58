package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

const keyPrefix = "salon:catalog:"

const (
	staffListKey  = keyPrefix + "staff"
	cabinsListKey = keyPrefix + "cabins"
)

func staffKey(id int64) string   { return fmt.Sprintf("%sstaff:%d", keyPrefix, id) }
func cabinKey(id int64) string   { return fmt.Sprintf("%scabin:%d", keyPrefix, id) }
func serviceKey(id int64) string { return fmt.Sprintf("%sservice:%d", keyPrefix, id) }

// Cache read-through кеш справочников в Redis.
// Недоступность Redis не ломает чтение: запрос уходит в источник.
// Ошибки источника (в том числе not found) не кешируются.
type Cache struct {
	source Source
	client RedisClient
	ttl    time.Duration
	logger Logger
}

// NewCache создает кеш поверх источника
func NewCache(source Source, client RedisClient, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// ListStaff получает активных сотрудников
func (c *Cache) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return readThrough(ctx, c, staffListKey, c.source.ListStaff)
}

// GetStaff получает сотрудника по ID
func (c *Cache) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	return readThrough(ctx, c, staffKey(id), func(ctx context.Context) (*domain.Staff, error) {
		return c.source.GetStaff(ctx, id)
	})
}

// ListCabins получает активные кабинеты
func (c *Cache) ListCabins(ctx context.Context) ([]domain.Cabin, error) {
	return readThrough(ctx, c, cabinsListKey, c.source.ListCabins)
}

// GetCabin получает кабинет по ID
func (c *Cache) GetCabin(ctx context.Context, id int64) (*domain.Cabin, error) {
	return readThrough(ctx, c, cabinKey(id), func(ctx context.Context) (*domain.Cabin, error) {
		return c.source.GetCabin(ctx, id)
	})
}

// GetService получает услугу по ID
func (c *Cache) GetService(ctx context.Context, id int64) (*domain.ServiceSpec, error) {
	return readThrough(ctx, c, serviceKey(id), func(ctx context.Context) (*domain.ServiceSpec, error) {
		return c.source.GetService(ctx, id)
	})
}

func readThrough[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn("CatalogCache: corrupt entry key=%s, reloading", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("CatalogCache: redis get key=%s failed: %v", key, err)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("CatalogCache: failed to marshal key=%s: %v", key, err)
		return value, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("CatalogCache: redis set key=%s failed: %v", key, err)
	}

	return value, nil
}
