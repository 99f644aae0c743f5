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

	cancelBookingHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/create_car"
	createReviewHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/create_review"
	deleteCarHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/delete_car"
	getBookingHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/get_booking"
	getCarHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/get_car"
	getCarRatingHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/get_car_rating"
	getOwnerBookingsHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/get_owner_bookings"
	getUserBookingsHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/get_user_bookings"
	getUserCarsHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/get_user_cars"
	listCarReviewsHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/list_car_reviews"
	listCarsHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/list_cars"
	updateBookingStatusHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/update_booking_status"
	updateCarHandler "github.com/m04kA/CarRental-BookingService/internal/api/handlers/update_car"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	"github.com/m04kA/CarRental-BookingService/internal/config"
	"github.com/m04kA/CarRental-BookingService/internal/infra/cache"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/car"
	reviewRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/review"
	userServiceClient "github.com/m04kA/CarRental-BookingService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/CarRental-BookingService/internal/service/bookings"
	carsService "github.com/m04kA/CarRental-BookingService/internal/service/cars"
	reviewsService "github.com/m04kA/CarRental-BookingService/internal/service/reviews"
	checkAvailabilityUC "github.com/m04kA/CarRental-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/CarRental-BookingService/internal/usecase/create_booking"
	updateBookingStatusUC "github.com/m04kA/CarRental-BookingService/internal/usecase/update_booking_status"
	"github.com/m04kA/CarRental-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CarRental-BookingService/pkg/logger"
	"github.com/m04kA/CarRental-BookingService/pkg/metrics"
	"github.com/m04kA/CarRental-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/CarRental-BookingService/pkg/txmanager"
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

	log.Info("Starting CarRental-BookingService...")
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

	// Инициализируем клиент профильного сервиса
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Кеш каталога (если включён Redis)
	var catalogCache *cache.CatalogCache
	if cfg.Redis.Enabled {
		catalogCache = cache.New(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.CatalogTTL)*time.Second,
		)
		defer catalogCache.Close()
		log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CatalogTTL)
	}

	// Продюсер событий (если включена Kafka)
	var producer *events.Producer
	if cfg.Events.Enabled {
		producer = events.NewProducer(cfg.Events.Brokers, cfg.Events.Topic)
		defer producer.Close()
		log.Info("Booking events producer enabled (brokers=%v, topic=%s)",
			cfg.Events.Brokers, cfg.Events.Topic)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		carRepository     *carRepo.Repository
		reviewRepository  *reviewRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		carRepository = carRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		carRepository = carRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Опциональные зависимости передаются через интерфейсные переменные:
	// typed-nil указатель внутри интерфейса сломал бы проверки publisher != nil
	var (
		createPublisher   createBookingUC.EventPublisher
		statusPublisher   updateBookingStatusUC.EventPublisher
		bookingsPublisher bookingsService.EventPublisher

		statusInvalidator   updateBookingStatusUC.CatalogInvalidator
		bookingsInvalidator bookingsService.CatalogInvalidator
		carsCatalogCache    carsService.CatalogCache
	)
	if producer != nil {
		createPublisher = producer
		statusPublisher = producer
		bookingsPublisher = producer
	}
	if catalogCache != nil {
		statusInvalidator = catalogCache
		bookingsInvalidator = catalogCache
		carsCatalogCache = catalogCache
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		carRepository,
		txMgr,
		bookingsPublisher,
		bookingsInvalidator,
		log,
	)
	carSvc := carsService.NewService(
		carRepository,
		carsCatalogCache,
		log,
	)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		carRepository,
		userClient,
		txMgr,
		createPublisher,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		carRepository,
		txMgr,
		statusPublisher,
		statusInvalidator,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	listCars := listCarsHandler.NewHandler(carSvc, log)
	getCar := getCarHandler.NewHandler(carSvc, log)
	getUserCars := getUserCarsHandler.NewHandler(carSvc, log)
	createCar := createCarHandler.NewHandler(carSvc, log)
	updateCar := updateCarHandler.NewHandler(carSvc, log)
	deleteCar := deleteCarHandler.NewHandler(carSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	listCarReviews := listCarReviewsHandler.NewHandler(reviewSvc, log)
	getCarRating := getCarRatingHandler.NewHandler(reviewSvc, log)

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

	// Каталог доступных автомобилей
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)

	// Проверка доступности автомобиля на диапазон дат
	api.HandleFunc("/cars/{carId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Отзывы и рейтинг автомобиля
	api.HandleFunc("/cars/{carId}/reviews", listCarReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}/rating", getCarRating.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований арендатора
	protected.HandleFunc("/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)

	// Заявки на автомобили владельца
	protected.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования владельцем
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования арендатором
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Объявления ---
	// Создание объявления
	protected.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)

	// Объявления пользователя
	protected.HandleFunc("/cars/my", getUserCars.Handle).Methods(http.MethodGet)

	// Редактирование и удаление объявления (только владелец)
	protected.HandleFunc("/cars/{carId}", updateCar.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/cars/{carId}", deleteCar.Handle).Methods(http.MethodDelete)

	// Отзыв по завершённому бронированию
	protected.HandleFunc("/cars/{carId}/reviews", createReview.Handle).Methods(http.MethodPost)

	// Карточка автомобиля - после protected-маршрутов, чтобы /cars/my
	// не матчился как {carId}
	api.HandleFunc("/cars/{carId}", getCar.Handle).Methods(http.MethodGet)

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
