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

	cancelBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_availability"
	checkInHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_out"
	createBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_booking"
	deleteRoomHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_room"
	getBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_bookings"
	getTimelineHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_timeline"
	searchRoomsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/search_rooms"
	updateBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_booking"
	updateStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_status"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	financeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/finance"
	housekeepingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/housekeeping"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	guestServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/guestservice"
	availabilityService "github.com/m04kA/SMC-ReservationService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-ReservationService/internal/service/bookings"
	timelineService "github.com/m04kA/SMC-ReservationService/internal/service/timeline"
	checkInUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_out"
	createBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	deleteBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/delete_booking"
	deleteRoomUC "github.com/m04kA/SMC-ReservationService/internal/usecase/delete_room"
	updateBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// TxManager общий интерфейс обоих менеджеров транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting SMC-ReservationService...")
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

	// Инициализируем клиента справочника гостей
	guestClient := guestServiceClient.NewClient(
		cfg.GuestService.URL,
		time.Duration(cfg.GuestService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (GuestService=%s timeout=%ds)",
		cfg.GuestService.URL, cfg.GuestService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		roomRepository         *roomRepo.Repository
		financeRepository      *financeRepo.Repository
		housekeepingRepository *housekeepingRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		financeRepository = financeRepo.NewRepository(wrappedDB)
		housekeepingRepository = housekeepingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		financeRepository = financeRepo.NewRepository(db)
		housekeepingRepository = housekeepingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, roomRepository, log)
	timelineSvc := timelineService.NewService(bookingRepository, roomRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		financeRepository,
		guestClient,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		financeRepository,
		txMgr,
		log,
	)
	checkInUseCase := checkInUC.NewUseCase(bookingRepository, roomRepository, txMgr, log)
	checkOutUseCase := checkOutUC.NewUseCase(bookingRepository, roomRepository, housekeepingRepository, txMgr, log)
	deleteBookingUseCase := deleteBookingUC.NewUseCase(bookingRepository, financeRepository, txMgr, log)
	deleteRoomUseCase := deleteRoomUC.NewUseCase(bookingRepository, roomRepository, financeRepository, txMgr, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	searchRooms := searchRoomsHandler.NewHandler(availabilitySvc, log)
	getTimeline := getTimelineHandler.NewHandler(timelineSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(deleteBookingUseCase, log)
	deleteRoom := deleteRoomHandler.NewHandler(deleteRoomUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности номера на интервал дат
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Поиск свободных номеров
	api.HandleFunc("/rooms/search", searchRooms.Handle).Methods(http.MethodGet)

	// Таймлайн занятости номеров
	api.HandleFunc("/timeline", getTimeline.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Физическое удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Заселение гостя
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPatch)

	// Выселение гостя
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPatch)

	// Административная смена статуса
	protected.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Номера ---
	// Удаление номера (с каскадом при ?force=true)
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

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
