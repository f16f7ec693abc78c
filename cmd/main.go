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

	addAddonHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/add_reservation_addon"
	approvePaymentHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/approve_payment"
	createReservationHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_reservation"
	gatewayWebhookHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/gateway_webhook"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_reservation"
	quoteHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/quote"
	recordPaymentHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/record_payment"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	addonRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/addon"
	companyRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/company"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	paymentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mercadopago"
	paymentsService "github.com/m04kA/SMC-CourtBookingService/internal/service/payments"
	reservationsService "github.com/m04kA/SMC-CourtBookingService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_availability"
	quoteUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/quote"
	settleWebhookUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/settle_webhook"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtBookingService...")
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

	// Инициализируем клиент платёжного шлюза
	gatewayClient := mercadopago.NewClient(mercadopago.Config{
		BaseURL:           cfg.Gateway.BaseURL,
		AccessToken:       cfg.Gateway.AccessToken,
		FrontendURL:       cfg.Gateway.FrontendURL,
		NotificationURL:   cfg.Gateway.NotificationURL,
		Currency:          cfg.Gateway.Currency,
		DefaultPayerEmail: cfg.Gateway.DefaultPayerEmail,
		Sandbox:           cfg.Gateway.Sandbox,
		Timeout:           time.Duration(cfg.Gateway.Timeout) * time.Second,
	}, log)
	log.Info("Payment gateway client initialized (base_url=%s, sandbox=%v, timeout=%ds)",
		cfg.Gateway.BaseURL, cfg.Gateway.Sandbox, cfg.Gateway.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		companyRepository     *companyRepo.Repository
		courtRepository       *courtRepo.Repository
		reservationRepository *reservationRepo.Repository
		paymentRepository     *paymentRepo.Repository
		addonRepository       *addonRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		companyRepository = companyRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		addonRepository = addonRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		companyRepository = companyRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		addonRepository = addonRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		addonRepository,
		courtRepository,
		companyRepository,
		txMgr,
		log,
	)
	paymentsSvc := paymentsService.NewService(
		paymentRepository,
		reservationRepository,
		courtRepository,
		companyRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	quoteUseCase := quoteUC.NewUseCase(courtRepository, cfg.Gateway.Currency, log)

	createReservationUseCase := createReservationUC.NewUseCase(
		courtRepository,
		companyRepository,
		reservationRepository,
		gatewayClient,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		courtRepository,
		companyRepository,
		reservationRepository,
		log,
	)

	settleWebhookUseCase := settleWebhookUC.NewUseCase(
		reservationRepository,
		paymentRepository,
		courtRepository,
		companyRepository,
		gatewayClient,
		txMgr,
		cfg.Gateway.WebhookSecret,
		log,
	)

	// Инициализируем handlers
	quote := quoteHandler.NewHandler(quoteUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	addAddon := addAddonHandler.NewHandler(reservationsSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(paymentsSvc, log)
	approvePayment := approvePaymentHandler.NewHandler(paymentsSvc, log)
	gatewayWebhook := gatewayWebhookHandler.NewHandler(settleWebhookUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// WEBHOOKS (публичные, подпись проверяется в usecase)
	// ============================================================

	r.HandleFunc("/api/webhooks/mercadopago", gatewayWebhook.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт стоимости без создания брони
	api.HandleFunc("/reservations/quote", quote.Handle).Methods(http.MethodPost)

	// Занятость корта на дату
	api.HandleFunc("/courts/{courtId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/addons", addAddon.Handle).Methods(http.MethodPost)

	// --- Платежи ---
	protected.HandleFunc("/reservations/{reservationId}/payments", recordPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{paymentId}/approve", approvePayment.Handle).Methods(http.MethodPost)

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
