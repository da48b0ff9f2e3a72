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

	createReservationHandler "github.com/jellomark/reservation-service/internal/api/handlers/create_reservation"
	getAvailableDatesHandler "github.com/jellomark/reservation-service/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/jellomark/reservation-service/internal/api/handlers/get_available_slots"
	getMemberReservationsHandler "github.com/jellomark/reservation-service/internal/api/handlers/get_member_reservations"
	getReservationHandler "github.com/jellomark/reservation-service/internal/api/handlers/get_reservation"
	getShopReservationsHandler "github.com/jellomark/reservation-service/internal/api/handlers/get_shop_reservations"
	transitionReservationHandler "github.com/jellomark/reservation-service/internal/api/handlers/transition_reservation"
	"github.com/jellomark/reservation-service/internal/api/middleware"
	"github.com/jellomark/reservation-service/internal/config"
	reservationRepo "github.com/jellomark/reservation-service/internal/infra/storage/reservation"
	memberServiceClient "github.com/jellomark/reservation-service/internal/integrations/memberservice"
	notifyServiceClient "github.com/jellomark/reservation-service/internal/integrations/notifyservice"
	shopServiceClient "github.com/jellomark/reservation-service/internal/integrations/shopservice"
	reservationsService "github.com/jellomark/reservation-service/internal/service/reservations"
	createReservationUC "github.com/jellomark/reservation-service/internal/usecase/create_reservation"
	getAvailableDatesUC "github.com/jellomark/reservation-service/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/jellomark/reservation-service/internal/usecase/get_available_slots"
	transitionReservationUC "github.com/jellomark/reservation-service/internal/usecase/transition_reservation"
	"github.com/jellomark/reservation-service/pkg/logger"
	"github.com/jellomark/reservation-service/pkg/metrics"
	"github.com/jellomark/reservation-service/pkg/txmanager"
)

const dbStatsInterval = 15 * time.Second

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

	log.Info("Starting reservation-service...")
	log.Info("Configuration loaded from config.toml")

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

	// Запускаем сбор метрик пула соединений
	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, dbStatsInterval, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем интеграционных клиентов
	shopClient := shopServiceClient.NewClient(
		cfg.ShopService.URL,
		time.Duration(cfg.ShopService.Timeout)*time.Second,
		log,
	)
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotificationService.URL,
		time.Duration(cfg.NotificationService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ShopService=%s, MemberService=%s, NotificationService=%s)",
		cfg.ShopService.URL, cfg.MemberService.URL, cfg.NotificationService.URL)

	// Инициализируем репозиторий и transaction manager
	reservationRepository := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewManager(db)

	// Инициализируем сервис чтения броней
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		shopClient,
		log,
	)

	// Инициализируем use cases
	timeProvider := &createReservationUC.RealTimeProvider{}

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		shopClient,
		memberClient,
		notifyClient,
		txMgr,
		timeProvider,
		log,
	)
	transitionReservationUseCase := transitionReservationUC.NewUseCase(
		reservationRepository,
		shopClient,
		memberClient,
		notifyClient,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		reservationRepository,
		shopClient,
		&getAvailableDatesUC.RealTimeProvider{},
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		shopClient,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	transitionReservation := transitionReservationHandler.NewHandler(transitionReservationUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getMemberReservations := getMemberReservationsHandler.NewHandler(reservationsSvc, log)
	getShopReservations := getShopReservationsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Даты месяца, на которые есть хотя бы один свободный слот
	api.HandleFunc("/shops/{shopId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// Сетка слотов на конкретную дату
	api.HandleFunc("/shops/{shopId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Смена статуса брони (confirm/reject/cancel/complete/no-show)
	protected.HandleFunc("/reservations/{reservationId}/{action}",
		transitionReservation.Handle).Methods(http.MethodPatch)

	// История броней участника
	protected.HandleFunc("/members/{memberId}/reservations",
		getMemberReservations.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для владельцев) ---
	// Список броней салона
	protected.HandleFunc("/shops/{shopId}/reservations",
		getShopReservations.Handle).Methods(http.MethodGet)

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
