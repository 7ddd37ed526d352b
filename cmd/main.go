package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers/create_booking"
	healthHandler "github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers/health"
	homeHandler "github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers/home"
	"github.com/kokoroskosv-git/Parking-slot-app/internal/api/middleware"
	"github.com/kokoroskosv-git/Parking-slot-app/internal/config"
	"github.com/kokoroskosv-git/Parking-slot-app/internal/db"
	entryRepo "github.com/kokoroskosv-git/Parking-slot-app/internal/infra/storage/entry"
	bookingsService "github.com/kokoroskosv-git/Parking-slot-app/internal/service/bookings"
	prebookService "github.com/kokoroskosv-git/Parking-slot-app/internal/service/prebook"
	createBookingUC "github.com/kokoroskosv-git/Parking-slot-app/internal/usecase/create_booking"
	getCalendarUC "github.com/kokoroskosv-git/Parking-slot-app/internal/usecase/get_calendar"
	"github.com/kokoroskosv-git/Parking-slot-app/internal/web"
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/dbmetrics"
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/logger"
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/metrics"
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/simpletxmanager"
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting Parking-slot-app...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect applies the embedded migrations before returning.
	sqlDB, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer sqlDB.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	staticCfg := cfg.StaticConfig()
	log.Info("Parking configuration: %d users, %d locations, executive=%s",
		len(staticCfg.Users), len(staticCfg.Locations), staticCfg.Executive.Name)

	var entryRepository *entryRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(sqlDB, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		entryRepository = entryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		entryRepository = entryRepo.NewRepository(sqlDB)
		txMgr = simpletxmanager.NewTransactionManager(sqlDB)
	}

	prebookSvc := prebookService.NewService(entryRepository, staticCfg, log)
	bookingsSvc := bookingsService.NewService(entryRepository, staticCfg, log)

	createBookingUseCase := createBookingUC.NewUseCase(entryRepository, staticCfg, txMgr, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(entryRepository, prebookSvc, staticCfg, log)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	home := homeHandler.NewHandler(getCalendarUseCase, renderer, staticCfg, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	health := healthHandler.NewHandler(sqlDB, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/", home.Handle).Methods(http.MethodGet)
	r.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
