package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

type fakeRedis struct {
	data    map[string]string
	getErr  error
	setKeys []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.setKeys = append(f.setKeys, key)
	if f.getErr != nil {
		return redis.NewStatusResult("", f.getErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

type fakeSource struct {
	staffCalls   int
	serviceCalls int
	staff        []domain.Staff
	services     map[int64]*domain.ServiceSpec
}

func (f *fakeSource) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	f.staffCalls++
	return f.staff, nil
}

func (f *fakeSource) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSource) ListCabins(ctx context.Context) ([]domain.Cabin, error) {
	return []domain.Cabin{{ID: 1, Name: "Blue", Active: true}}, nil
}

func (f *fakeSource) GetCabin(ctx context.Context, id int64) (*domain.Cabin, error) {
	return &domain.Cabin{ID: id, Active: true}, nil
}

func (f *fakeSource) GetService(ctx context.Context, id int64) (*domain.ServiceSpec, error) {
	f.serviceCalls++
	s, ok := f.services[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

var errNotFound = errors.New("not found")

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func TestCache_ReadThrough(t *testing.T) {
	source := &fakeSource{staff: []domain.Staff{{ID: 1, Name: "Anna", Active: true}}}
	rdb := newFakeRedis()
	cache := NewCache(source, rdb, time.Minute, nopLogger{})

	first, err := cache.ListStaff(context.Background())
	require.NoError(t, err)
	second, err := cache.ListStaff(context.Background())
	require.NoError(t, err)

	assert.Equal(t, source.staff, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.staffCalls)
}

func TestCache_DoesNotCacheErrors(t *testing.T) {
	source := &fakeSource{services: map[int64]*domain.ServiceSpec{}}
	rdb := newFakeRedis()
	cache := NewCache(source, rdb, time.Minute, nopLogger{})

	_, err := cache.GetService(context.Background(), 5)
	assert.ErrorIs(t, err, errNotFound)
	assert.Empty(t, rdb.setKeys)

	source.services[5] = &domain.ServiceSpec{ID: 5, Name: "Manicure", DurationMinutes: 60}
	svc, err := cache.GetService(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 60, svc.DurationMinutes)
	assert.Equal(t, []string{"salon:catalog:service:5"}, rdb.setKeys)
}

func TestCache_FallsBackWhenRedisIsDown(t *testing.T) {
	source := &fakeSource{staff: []domain.Staff{{ID: 2, Name: "Olga", Active: true}}}
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	cache := NewCache(source, rdb, time.Minute, nopLogger{})

	for i := 0; i < 2; i++ {
		staff, err := cache.ListStaff(context.Background())
		require.NoError(t, err)
		assert.Equal(t, source.staff, staff)
	}
	assert.Equal(t, 2, source.staffCalls)
}
