package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
	bookTestDriveHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/book_test_drive"
	cancelBookingHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/cancel_booking"
	getAllBookingsHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/get_booking"
	getTestDriveInfoHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/get_test_drive_info"
	getUserBookingsHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/get_user_bookings"
	getWorkingHoursHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/get_working_hours"
	listCarsHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/list_cars"
	updateBookingStatusHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/update_booking_status"
	updateWorkingHoursHandler "github.com/m04kA/SMC-TestDriveService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-TestDriveService/internal/api/middleware"
	"github.com/m04kA/SMC-TestDriveService/internal/config"
	workingHoursCache "github.com/m04kA/SMC-TestDriveService/internal/infra/cache/workinghours"
	bookingRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/car"
	dealershipRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/dealership"
	userServiceClient "github.com/m04kA/SMC-TestDriveService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-TestDriveService/internal/service/bookings"
	dealershipService "github.com/m04kA/SMC-TestDriveService/internal/service/dealership"
	bookTestDriveUC "github.com/m04kA/SMC-TestDriveService/internal/usecase/book_test_drive"
	getAvailableSlotsUC "github.com/m04kA/SMC-TestDriveService/internal/usecase/get_available_slots"
	getTestDriveInfoUC "github.com/m04kA/SMC-TestDriveService/internal/usecase/get_test_drive_info"
	listCarsUC "github.com/m04kA/SMC-TestDriveService/internal/usecase/list_cars"
	"github.com/m04kA/SMC-TestDriveService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
	"github.com/m04kA/SMC-TestDriveService/pkg/metrics"
	"github.com/m04kA/SMC-TestDriveService/pkg/txmanager"
)

const poolStatsInterval = 15 * time.Second

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TestDriveService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Business counters are always recorded; without metrics they go to a private registry
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegisterer(prometheus.NewRegistry(), cfg.Metrics.ServiceName)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(config.Seconds(cfg.Database.ConnMaxLifetime))

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var queryObserver dbmetrics.QueryObserver
	if cfg.Metrics.Enabled {
		queryObserver = metricsCollector
	}
	wrappedDB := dbmetrics.Wrap(db, queryObserver)

	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		wrappedDB.CollectPoolStats(metricsCollector, poolStatsInterval, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	carRepository := carRepo.NewRepository(wrappedDB)
	dealershipRepository := dealershipRepo.NewRepository(wrappedDB)

	// Working hours are read on every slot computation; cache them when Redis is configured
	var (
		workingHours dealershipService.WorkingHoursReader = dealershipRepository
		invalidator  dealershipService.CacheInvalidator
		redisClient  *redis.Client
	)
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis at %s is not reachable, working hours will be read from the database: %v", cfg.Redis.Addr, err)
		}
		cancel()

		cache := workingHoursCache.NewCache(dealershipRepository, redisClient, config.Seconds(cfg.Redis.TTL), log)
		workingHours = cache
		invalidator = cache
		log.Info("Working hours cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	userClient := userServiceClient.NewClient(cfg.UserService.URL, config.Seconds(cfg.UserService.Timeout), log)
	log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	bookingSvc := bookingsService.NewService(bookingRepository, userClient, txMgr, log)
	dealershipSvc := dealershipService.NewService(
		dealershipRepository,
		workingHours,
		invalidator,
		txMgr,
		cfg.Dealership.Name,
		log,
	)

	getTestDriveInfoUseCase := getTestDriveInfoUC.NewUseCase(carRepository, workingHours, bookingRepository, cfg.Dealership.Name, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(carRepository, workingHours, bookingRepository, log)
	bookTestDriveUseCase := bookTestDriveUC.NewUseCase(bookingRepository, carRepository, workingHours, txMgr, metricsCollector, log)
	listCarsUseCase := listCarsUC.NewUseCase(carRepository, log)

	getTestDriveInfo := getTestDriveInfoHandler.NewHandler(getTestDriveInfoUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookTestDrive := bookTestDriveHandler.NewHandler(bookTestDriveUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listCars := listCarsHandler.NewHandler(listCarsUseCase, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(dealershipSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(dealershipSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/cars/{carId}/test-drive-info", getTestDriveInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Routes for signed-in users (X-User-ID)
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth)

	var bookHandler http.Handler = http.HandlerFunc(bookTestDrive.Handle)
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		bookHandler = limiter.Middleware(bookHandler)
		log.Info("Booking rate limit: %d/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	protected.Handle("/test-drives", bookHandler).Methods(http.MethodPost)
	protected.HandleFunc("/test-drives/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/test-drives/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/test-drives", getUserBookings.Handle).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly(userClient, log))

	admin.HandleFunc("/test-drives", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/test-drives/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dealership/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dealership/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	var handler http.Handler = gorillaHandlers.LoggingHandler(log.Writer(), r)
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.UserIDHeader, middleware.RequestIDHeader}),
			gorillaHandlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
		)(handler)
		log.Info("CORS enabled for %v", cfg.CORS.AllowedOrigins)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
