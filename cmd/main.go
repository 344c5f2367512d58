package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	copyWeekShiftsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/copy_week_shifts"
	createAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/create_appointment"
	deleteShiftHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/delete_shift"
	findSlotsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/find_slots"
	getAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_appointment"
	getDayLayoutHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_day_layout"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_appointments"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_appointment_status"
	upsertShiftHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/upsert_shift"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/config"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	catalogCache "github.com/m04kA/SMC-SalonScheduler/internal/infra/cache/catalog"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	shiftRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/shift"
	clientServiceClient "github.com/m04kA/SMC-SalonScheduler/internal/integrations/clientservice"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
	appointmentsService "github.com/m04kA/SMC-SalonScheduler/internal/service/appointments"
	shiftsService "github.com/m04kA/SMC-SalonScheduler/internal/service/shifts"
	createAppointmentUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
	dayLayoutUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/day_layout"
	findSlotsUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_slots"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonScheduler/pkg/txmanager"
)

// catalogReader справочники салона: напрямую из БД или через Redis
type catalogReader interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	ListCabins(ctx context.Context) ([]domain.Cabin, error)
	GetCabin(ctx context.Context, id int64) (*domain.Cabin, error)
	GetService(ctx context.Context, id int64) (*domain.ServiceSpec, error)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonScheduler...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Invalid salon timezone: %v", err)
	}
	openTime, closeTime, err := cfg.Scheduling.OpeningHours()
	if err != nil {
		log.Fatal("Invalid opening hours: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории и transaction manager (с метриками или без)
	var (
		executor dbmetrics.DBExecutor = db
		txMgr    *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentRepository := appointmentRepo.NewRepository(executor)
	shiftRepository := shiftRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)

	// Кеш справочников (если включен)
	var catalog catalogReader = catalogRepository
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, catalog will be read from database until it recovers: %v",
				cfg.Redis.Addr, err)
		}
		cancelPing()

		catalog = catalogCache.NewCache(catalogRepository, redisClient, cfg.Redis.TTL(), log)
		log.Info("Catalog cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	}

	// Инициализируем интеграционных клиентов
	clientService := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ClientService=%s timeout=%ds)",
		cfg.ClientService.URL, cfg.ClientService.Timeout)

	// Ядро планирования
	finder, err := scheduling.NewFinder(scheduling.FinderConfig{
		Location:     location,
		StepMinutes:  cfg.Scheduling.SlotStepMinutes,
		DefaultOpen:  openTime,
		DefaultClose: closeTime,
	})
	if err != nil {
		log.Fatal("Failed to configure slot search: %v", err)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	shiftSvc := shiftsService.NewService(shiftRepository, catalog, txMgr, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		shiftRepository,
		catalog,
		clientService,
		txMgr,
		location,
		metricsCollector,
		log,
	)
	findSlotsUseCase := findSlotsUC.NewUseCase(
		appointmentRepository,
		shiftRepository,
		catalog,
		finder,
		location,
		findSlotsUC.Settings{
			DefaultHorizonDays: cfg.Scheduling.SearchHorizonDays,
			MaxHorizonDays:     cfg.Scheduling.MaxSearchHorizonDays,
			MaxResults:         cfg.Scheduling.MaxResults,
		},
		metricsCollector,
		log,
	)
	dayLayoutUseCase := dayLayoutUC.NewUseCase(appointmentRepository, catalog, location, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	findSlots := findSlotsHandler.NewHandler(findSlotsUseCase, log)
	getDayLayout := getDayLayoutHandler.NewHandler(dayLayoutUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	upsertShift := upsertShiftHandler.NewHandler(shiftSvc, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftSvc, log)
	copyWeekShifts := copyWeekShiftsHandler.NewHandler(shiftSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск свободных слотов
	var findSlotsRoute http.Handler = http.HandlerFunc(findSlots.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		findSlotsRoute = limiter.Middleware(findSlotsRoute)
		log.Info("Rate limit on slot search: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	api.Handle("/available-slots", findSlotsRoute).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Календарь кабинета ---
	protected.HandleFunc("/cabins/{cabinId}/layout", getDayLayout.Handle).Methods(http.MethodGet)

	// --- График сотрудников ---
	protected.HandleFunc("/staff/{staffId}/shifts/copy-week", copyWeekShifts.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}/shifts/{date}", upsertShift.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/shifts/{date}", deleteShift.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
