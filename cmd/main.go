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

	cancelBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_booking"
	getBookingReportHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_booking_report"
	getCustomerBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_customer_bookings"
	getDayAvailabilityHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_day_availability"
	getHallBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_hall_bookings"
	getMonthCalendarHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_month_calendar"
	recordPaymentHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/record_payment"
	sessionsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/sessions"
	settleBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/settle_booking"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/config"
	"github.com/m04kA/SMC-VenueBookingService/internal/infra/cache/monthcache"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	calendarClient "github.com/m04kA/SMC-VenueBookingService/internal/integrations/calendarservice"
	masterDataClient "github.com/m04kA/SMC-VenueBookingService/internal/integrations/masterdata"
	bookingsService "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	stagingService "github.com/m04kA/SMC-VenueBookingService/internal/service/staging"
	"github.com/m04kA/SMC-VenueBookingService/internal/session"
	createBookingUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	getBookingReportUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_booking_report"
	getDayAvailabilityUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_day_availability"
	getMonthCalendarUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_month_calendar"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/logger"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VenueBookingService/pkg/txmanager"
)

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

	log.Info("Starting SMC-VenueBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Кэш месячных проекций (если включен)
	var monthCache *monthcache.Cache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer rdb.Close()

		monthCache = monthcache.New(rdb, time.Duration(cfg.Redis.TTL)*time.Second, log)
		log.Info("Month calendar cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем интеграционных клиентов
	masterData := masterDataClient.NewClient(
		cfg.MasterData.URL,
		time.Duration(cfg.MasterData.Timeout)*time.Second,
		log,
	)
	calendar := calendarClient.NewClient(
		cfg.CalendarService.URL,
		time.Duration(cfg.CalendarService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (MasterData=%s timeout=%ds, CalendarService=%s timeout=%ds)",
		cfg.MasterData.URL, cfg.MasterData.Timeout, cfg.CalendarService.URL, cfg.CalendarService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             createBookingUC.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	sessionManager := session.NewManager(time.Duration(cfg.Session.TTL)*time.Second, log)
	stopCleanupCh := make(chan struct{})
	sessionManager.RunCleanup(time.Duration(cfg.Session.CleanupInterval)*time.Second, stopCleanupCh)
	log.Info("Session manager started (ttl=%ds, cleanup=%ds)", cfg.Session.TTL, cfg.Session.CleanupInterval)

	stagingSvc := stagingService.NewService(sessionManager, bookingRepository, masterData, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, masterData, txMgr, log)
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(bookingRepository, masterData, log)
	getBookingReportUseCase := getBookingReportUC.NewUseCase(bookingRepository, log)

	var calendarCache getMonthCalendarUC.MonthCache
	if monthCache != nil {
		calendarCache = monthCache
	}
	getMonthCalendarUseCase := getMonthCalendarUC.NewUseCase(calendar, calendarCache, masterData, log)

	// Кэш-инвалидатор для обработчиков записи; nil, если кэш выключен
	var invalidator createBookingHandler.CacheInvalidator
	if monthCache != nil {
		invalidator = monthCache
	}

	scope := cfg.CalendarService.Scope

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, invalidator, scope, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, invalidator, scope, log)
	settleBooking := settleBookingHandler.NewHandler(bookingSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getHallBookings := getHallBookingsHandler.NewHandler(bookingSvc, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	getMonthCalendar := getMonthCalendarHandler.NewHandler(getMonthCalendarUseCase, scope, log)
	getBookingReport := getBookingReportHandler.NewHandler(getBookingReportUseCase, log)
	sessionEndpoints := sessionsHandler.NewHandler(stagingSvc, createBookingUseCase, invalidator, scope, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность зала на дату
	api.HandleFunc("/halls/{hallId}/availability", getDayAvailability.Handle).Methods(http.MethodGet)

	// Месячная сетка занятости зала
	api.HandleFunc("/halls/{hallId}/calendar/{year}/{month}", getMonthCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Закрытие расчёта
	protected.HandleFunc("/bookings/{bookingId}/settle", settleBooking.Handle).Methods(http.MethodPatch)

	// Внесение оплаты
	protected.HandleFunc("/bookings/{bookingId}/payments", recordPayment.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Список бронирований зала
	protected.HandleFunc("/halls/{hallId}/bookings", getHallBookings.Handle).Methods(http.MethodGet)

	// --- Отчёты ---
	protected.HandleFunc("/reports/bookings", getBookingReport.Handle).Methods(http.MethodGet)

	// --- Сессии композиции бронирования ---
	protected.HandleFunc("/sessions", sessionEndpoints.Create).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}", sessionEndpoints.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/{sessionId}/refresh", sessionEndpoints.Refresh).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/selections", sessionEndpoints.Selections).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/selections", sessionEndpoints.AddSelection).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/toggle-slot", sessionEndpoints.ToggleSlot).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/toggle-full-day", sessionEndpoints.ToggleFullDay).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/finalize", sessionEndpoints.Finalize).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи
	close(stopCleanupCh)
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
