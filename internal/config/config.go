package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Redis         RedisConfig         `toml:"redis"`
	ClientService ClientServiceConfig `toml:"client_service"`
	Scheduling    SchedulingConfig    `toml:"scheduling"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки кеша справочников
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL время жизни записи в кеше
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// ClientServiceConfig настройки клиента справочника клиентов салона
type ClientServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SchedulingConfig настройки поиска слотов и валидации записей
type SchedulingConfig struct {
	Timezone             string `toml:"timezone"`
	SlotStepMinutes      int    `toml:"slot_step_minutes"`
	DefaultOpen          string `toml:"default_open"`
	DefaultClose         string `toml:"default_close"`
	SearchHorizonDays    int    `toml:"search_horizon_days"`
	MaxSearchHorizonDays int    `toml:"max_search_horizon_days"`
	MaxResults           int    `toml:"max_results"`
}

// Location таймзона салона
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// OpeningHours общие часы работы салона для сотрудников без графика
func (s SchedulingConfig) OpeningHours() (types.TimeString, types.TimeString, error) {
	open, err := types.NewTimeStringFromString(s.DefaultOpen)
	if err != nil {
		return types.TimeString{}, types.TimeString{}, fmt.Errorf("default_open: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(s.DefaultClose)
	if err != nil {
		return types.TimeString{}, types.TimeString{}, fmt.Errorf("default_close: %w", err)
	}
	return open, closeTime, nil
}

// RateLimitConfig ограничение частоты запросов к публичному поиску слотов
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и для встроенных конфигов)
func Parse(data string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-scheduler",
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 300,
		},
		ClientService: ClientServiceConfig{
			Timeout: 5,
		},
		Scheduling: SchedulingConfig{
			Timezone:             "UTC",
			SlotStepMinutes:      domain.DefaultSlotStepMinutes,
			DefaultOpen:          domain.DefaultOpenTime,
			DefaultClose:         domain.DefaultCloseTime,
			SearchHorizonDays:    domain.DefaultSearchHorizonDays,
			MaxSearchHorizonDays: domain.DefaultMaxSearchHorizonDays,
			MaxResults:           domain.DefaultMaxResults,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port", ErrInvalidConfig)
	}

	s := c.Scheduling
	if _, err := s.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}
	if s.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	open, closeTime, err := s.OpeningHours()
	if err != nil {
		return fmt.Errorf("%w: scheduling.%v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closeTime) {
		return fmt.Errorf("%w: scheduling.default_open must be before default_close", ErrInvalidConfig)
	}
	if s.SearchHorizonDays <= 0 || s.MaxSearchHorizonDays < s.SearchHorizonDays {
		return fmt.Errorf("%w: scheduling.search_horizon_days must be in [1, max_search_horizon_days]", ErrInvalidConfig)
	}
	if s.MaxResults <= 0 {
		return fmt.Errorf("%w: scheduling.max_results must be positive", ErrInvalidConfig)
	}

	if c.Redis.Enabled && c.Redis.TTLSeconds <= 0 {
		return fmt.Errorf("%w: redis.ttl_seconds must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	return nil
}
