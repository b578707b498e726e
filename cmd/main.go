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

	cancelBookingHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/check_slot"
	createBookingHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/get_booking"
	getExperienceHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/get_experience"
	listBookingsHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/list_bookings"
	listExperiencesHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/list_experiences"
	validatePromoHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/validate_promo"
	"github.com/m04kA/SMC-ExperienceService/internal/api/middleware"
	"github.com/m04kA/SMC-ExperienceService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	promoRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/promo"
	bookingsService "github.com/m04kA/SMC-ExperienceService/internal/service/bookings"
	experiencesService "github.com/m04kA/SMC-ExperienceService/internal/service/experiences"
	promosService "github.com/m04kA/SMC-ExperienceService/internal/service/promos"
	checkSlotUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/check_slot"
	createBookingUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-ExperienceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/logger"
	"github.com/m04kA/SMC-ExperienceService/pkg/metrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ExperienceService/pkg/txmanager"
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

	log.Info("Starting SMC-ExperienceService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		experienceRepository *experienceRepo.Repository
		promoRepository      *promoRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		experienceRepository = experienceRepo.NewRepository(wrappedDB)
		promoRepository = promoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		experienceRepository = experienceRepo.NewRepository(db)
		promoRepository = promoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	experienceSvc := experiencesService.NewService(experienceRepository, log)
	promoSvc := promosService.NewService(promoRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		experienceRepository,
		promoSvc,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		experienceRepository,
		log,
	)

	checkSlotUseCase := checkSlotUC.NewUseCase(
		bookingRepository,
		experienceRepository,
		log,
	)

	// Инициализируем handlers
	listExperiences := listExperiencesHandler.NewHandler(experienceSvc, log)
	getExperience := getExperienceHandler.NewHandler(experienceSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	validatePromo := validatePromoHandler.NewHandler(promoSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог активностей ---
	api.HandleFunc("/experiences", listExperiences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{experienceId}", getExperience.Handle).Methods(http.MethodGet)

	// --- Доступность слотов ---
	api.HandleFunc("/experiences/{experienceId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{experienceId}/availability/slot",
		checkSlot.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Промокоды ---
	api.HandleFunc("/promo/validate", validatePromo.Handle).Methods(http.MethodPost)

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
