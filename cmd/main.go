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

	blockTimeslotHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/block_timeslot"
	cancelBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_booking"
	createCheckoutHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_checkout"
	createCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_court"
	deactivateCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/deactivate_court"
	getBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking"
	getCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_court"
	getCourtAvailabilityHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_court_availability"
	healthHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_bookings"
	listCourtsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_courts"
	paymentWebhookHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/payment_webhook"
	updateBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_booking"
	updateCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_court"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/events"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/idempotency"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/stripe"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	blockTimeslotUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/block_timeslot"
	createBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	createCheckoutUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_checkout"
	getCourtAvailabilityUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_court_availability"
	processWebhookUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/process_payment_webhook"
	updateBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
)

// Публикатор событий бронирований (RabbitMQ или no-op)
type bookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error
}

// Хранилище обработанных событий webhook (Redis или no-op)
type webhookEventStore interface {
	Acquire(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
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

	log.Info("Starting SMC-CourtBookingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасно принимается всеми потребителями
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

	// Статистика пула собирается только при включенных метриках
	var dbRecorder dbmetrics.Recorder
	if metricsCollector != nil {
		dbRecorder = metricsCollector
	}
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithRetryRecorder(metricsCollector))

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Брокер событий (опционально)
	var publisher bookingEventPublisher = events.NopPublisher{}
	var rabbitPublisher *events.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err = events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = rabbitPublisher
		log.Info("Booking events are published to exchange %s", cfg.RabbitMQ.Exchange)
	}

	// Идемпотентность webhook (опционально)
	var webhookEvents webhookEventStore = idempotency.NopStore{}
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = idempotency.NewRedisClient(context.Background(),
			cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		webhookEvents = idempotency.NewRedisStore(redisClient, time.Duration(cfg.Redis.EventTTLSec)*time.Second)
		log.Info("Webhook deduplication enabled (redis=%s)", cfg.Redis.Address)
	}

	// Платежный шлюз
	paymentGateway := stripe.NewClient(stripe.Config{
		SecretKey:     cfg.Payments.StripeSecretKey,
		WebhookSecret: cfg.Payments.WebhookSecret,
		Currency:      cfg.Payments.Currency,
		SuccessURL:    cfg.Payments.SuccessURL,
		CancelURL:     cfg.Payments.CancelURL,
	}, log)
	log.Info("Payments enabled=%t (currency=%s)", cfg.Payments.Enabled, cfg.Payments.Currency)

	// Инициализируем сервисы
	availabilityChecker := availability.NewChecker(bookingRepository)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, publisher, metricsCollector, log)
	courtSvc := courtsService.NewService(courtRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		availabilityChecker,
		txMgr,
		publisher,
		metricsCollector,
		location,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		availabilityChecker,
		txMgr,
		publisher,
		metricsCollector,
		location,
		log,
	)
	blockTimeslotUseCase := blockTimeslotUC.NewUseCase(
		bookingRepository,
		courtRepository,
		availabilityChecker,
		txMgr,
		publisher,
		metricsCollector,
		location,
		log,
	)
	getCourtAvailabilityUseCase := getCourtAvailabilityUC.NewUseCase(
		bookingRepository,
		courtRepository,
		location,
		log,
	)
	createCheckoutUseCase := createCheckoutUC.NewUseCase(
		bookingRepository,
		paymentGateway,
		cfg.Payments.Enabled,
		log,
	)
	processWebhookUseCase := processWebhookUC.NewUseCase(
		bookingRepository,
		paymentGateway,
		webhookEvents,
		publisher,
		metricsCollector,
		cfg.Payments.Enabled,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	blockTimeslot := blockTimeslotHandler.NewHandler(blockTimeslotUseCase, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deactivateCourt := deactivateCourtHandler.NewHandler(courtSvc, log)
	getCourtAvailability := getCourtAvailabilityHandler.NewHandler(getCourtAvailabilityUseCase, log)
	createCheckout := createCheckoutHandler.NewHandler(createCheckoutUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(processWebhookUseCase, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, userRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/availability", getCourtAvailability.Handle).Methods(http.MethodGet)

	// Подлинность webhook проверяется подписью Stripe
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <JWT>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	// Маршрут блокировки регистрируется раньше /bookings/{bookingId}
	protected.HandleFunc("/bookings/block", blockTimeslot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Управление кортами (для менеджеров и администраторов) ---
	protected.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/courts/{courtId}", deactivateCourt.Handle).Methods(http.MethodDelete)

	// --- Оплата ---
	protected.HandleFunc("/payments/create-checkout-session", createCheckout.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if rabbitPublisher != nil {
		if err := rabbitPublisher.Close(); err != nil {
			log.Warn("Failed to close RabbitMQ publisher: %v", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close Redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
