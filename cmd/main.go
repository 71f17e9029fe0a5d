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

	cancelBookingHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/get_client_bookings"
	getClientSummaryHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/get_client_summary"
	getVenueBookingsHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/get_venue_bookings"
	importCatalogHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/import_catalog"
	listBookingsHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/list_bookings"
	manageClientsHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/manage_clients"
	manageEventsHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/manage_events"
	manageVenuesHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/manage_venues"
	matchVenuesHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/match_venues"
	requestBookingHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/request_booking"
	updateBookingHandler "github.com/avlko/GMA-BookingService/internal/api/handlers/update_booking"
	"github.com/avlko/GMA-BookingService/internal/api/middleware"
	"github.com/avlko/GMA-BookingService/internal/config"
	bookingRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	bookingsService "github.com/avlko/GMA-BookingService/internal/service/bookings"
	clientsService "github.com/avlko/GMA-BookingService/internal/service/clients"
	eventsService "github.com/avlko/GMA-BookingService/internal/service/events"
	venuesService "github.com/avlko/GMA-BookingService/internal/service/venues"
	confirmBookingUC "github.com/avlko/GMA-BookingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/avlko/GMA-BookingService/internal/usecase/create_booking"
	importCatalogUC "github.com/avlko/GMA-BookingService/internal/usecase/import_catalog"
	matchVenuesUC "github.com/avlko/GMA-BookingService/internal/usecase/match_venues"
	updateBookingUC "github.com/avlko/GMA-BookingService/internal/usecase/update_booking"
	"github.com/avlko/GMA-BookingService/pkg/dbmetrics"
	"github.com/avlko/GMA-BookingService/pkg/logger"
	"github.com/avlko/GMA-BookingService/pkg/metrics"
	"github.com/avlko/GMA-BookingService/pkg/simpletxmanager"
	"github.com/avlko/GMA-BookingService/pkg/txmanager"
	"github.com/avlko/GMA-BookingService/pkg/venuelock"
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

	log.Info("Starting GMA-BookingService...")
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

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		venueRepository   *venueRepo.Repository
		eventRepository   *eventRepo.Repository
		clientRepository  *clientRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		eventRepository = eventRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		eventRepository = eventRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Мьютексы площадок для check-then-act операций над бронированиями
	locker := venuelock.New()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	venueSvc := venuesService.NewService(venueRepository, log)
	eventSvc := eventsService.NewService(eventRepository, bookingRepository, clientRepository, log)
	clientSvc := clientsService.NewService(clientRepository, bookingRepository, venueRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		eventRepository,
		clientRepository,
		txMgr,
		locker,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		locker,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		eventRepository,
		clientRepository,
		txMgr,
		locker,
		log,
	)
	matchVenuesUseCase := matchVenuesUC.NewUseCase(
		venueRepository,
		eventRepository,
		clientRepository,
		bookingRepository,
		log,
	)
	importCatalogUseCase := importCatalogUC.NewUseCase(
		venueRepository,
		eventRepository,
		clientSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	requestBooking := requestBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getClientSummary := getClientSummaryHandler.NewHandler(clientSvc, log)
	matchVenues := matchVenuesHandler.NewHandler(matchVenuesUseCase, log)
	manageVenues := manageVenuesHandler.NewHandler(venueSvc, log)
	manageEvents := manageEventsHandler.NewHandler(eventSvc, log)
	manageClients := manageClientsHandler.NewHandler(clientSvc, log)
	importCatalog := importCatalogHandler.NewHandler(importCatalogUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без заголовка сотрудника)
	// ============================================================

	// Каталог площадок
	api.HandleFunc("/venues", manageVenues.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/venues/{id}", manageVenues.HandleGet).Methods(http.MethodGet)

	// Каталог событий
	api.HandleFunc("/events", manageEvents.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", manageEvents.HandleGet).Methods(http.MethodGet)

	// Подбор площадок для события
	api.HandleFunc("/events/{id}/matches", matchVenues.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-Login header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Staff)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-requests", requestBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Расписание площадки
	protected.HandleFunc("/venues/{id}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// --- Управление каталогом ---
	protected.HandleFunc("/venues", manageVenues.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/venues/{id}", manageVenues.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/venues/{id}", manageVenues.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/events", manageEvents.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/events/{id}", manageEvents.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/events/{id}", manageEvents.HandleDelete).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/clients", manageClients.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/clients/find-or-create", manageClients.HandleFindOrCreate).Methods(http.MethodPost)
	protected.HandleFunc("/clients", manageClients.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", manageClients.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", manageClients.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{id}", manageClients.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/clients/{id}/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}/summary", getClientSummary.Handle).Methods(http.MethodGet)

	// --- Импорт каталога из CSV ---
	protected.HandleFunc("/imports/venues", importCatalog.HandleVenues).Methods(http.MethodPost)
	protected.HandleFunc("/imports/events", importCatalog.HandleEvents).Methods(http.MethodPost)

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
