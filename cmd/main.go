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
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/create_booking"
	createPitchHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/create_pitch"
	getAvailableSlotsHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/get_booking"
	getPitchesHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/get_pitches"
	getUserBookingsHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/get_user_bookings"
	runCompleteBookingsHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/run_complete_bookings"
	runProcessJobsHandler "github.com/m04kA/SMC-PitchBookingService/internal/api/handlers/run_process_jobs"
	"github.com/m04kA/SMC-PitchBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PitchBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/booking"
	jobRepo "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/job"
	pitchRepo "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/pitch"
	profileServiceClient "github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-PitchBookingService/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-PitchBookingService/internal/service/bookings"
	pitchesService "github.com/m04kA/SMC-PitchBookingService/internal/service/pitches"
	completeBookingsUC "github.com/m04kA/SMC-PitchBookingService/internal/usecase/complete_bookings"
	createBookingUC "github.com/m04kA/SMC-PitchBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-PitchBookingService/internal/usecase/get_available_slots"
	processBookingJobsUC "github.com/m04kA/SMC-PitchBookingService/internal/usecase/process_booking_jobs"
	"github.com/m04kA/SMC-PitchBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PitchBookingService/pkg/logger"
	"github.com/m04kA/SMC-PitchBookingService/pkg/metrics"
	"github.com/m04kA/SMC-PitchBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-PitchBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-PitchBookingService...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент identity-провайдера
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("ProfileService client initialized (url=%s, timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		pitchRepository   *pitchRepo.Repository
		jobRepository     *jobRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		pitchRepository = pitchRepo.NewRepository(wrappedDB)
		jobRepository = jobRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		pitchRepository = pitchRepo.NewRepository(db)
		jobRepository = jobRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кэш площадок для генерации слотов
	pitchTTL := time.Duration(cfg.Cache.PitchTTL) * time.Second
	pitchCache := gocache.New(pitchTTL, 2*pitchTTL)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, profileClient, log)
	pitchSvc := pitchesService.NewService(pitchRepository, profileClient, pitchCache, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		pitchRepository,
		profileClient,
		pitchCache,
		&getAvailableSlotsUC.RealTimeProvider{},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		pitchRepository,
		profileClient,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		log,
	)

	completeBookingsUseCase := completeBookingsUC.NewUseCase(
		bookingRepository,
		&completeBookingsUC.RealTimeProvider{},
		log,
	)

	processBookingJobsUseCase := processBookingJobsUC.NewUseCase(
		jobRepository,
		bookingRepository,
		&processBookingJobsUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getPitches := getPitchesHandler.NewHandler(pitchSvc, log)
	createPitch := createPitchHandler.NewHandler(pitchSvc, log)
	runCompleteBookings := runCompleteBookingsHandler.NewHandler(completeBookingsUseCase, log)
	runProcessJobs := runProcessJobsHandler.NewHandler(processBookingJobsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		public.Use(limiter.Middleware)
		log.Info("Rate limiting enabled on public routes (rps=%.1f, burst=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Виртуальные слоты скользящего окна 24 часов
	public.HandleFunc("/available-slots", getAvailableSlots.Handle).
		Methods(http.MethodGet, http.MethodPost)

	// Список площадок
	public.HandleFunc("/pitches", getPitches.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование площадок ---
	protected.HandleFunc("/pitches", createPitch.Handle).Methods(http.MethodPost)

	// --- Фоновые задачи (ручной запуск внешним планировщиком) ---
	api.HandleFunc("/jobs/complete-bookings", runCompleteBookings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/jobs/process-booking-jobs", runProcessJobs.Handle).Methods(http.MethodPost)

	// Встроенный планировщик фоновых задач
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()

	if cfg.Scheduler.Enabled {
		sched := scheduler.New(
			completeBookingsUseCase,
			processBookingJobsUseCase,
			time.Duration(cfg.Scheduler.SweepInterval)*time.Second,
			time.Duration(cfg.Scheduler.JobsInterval)*time.Second,
			metricsCollector,
			log,
		)
		if err := sched.Start(schedulerCtx); err != nil {
			log.Fatal("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	cancelScheduler()

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
