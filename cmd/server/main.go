package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flight-server/internal/domain/initialdata"
	"flight-server/internal/infrastructure/config"
	"flight-server/internal/infrastructure/persistence"
	"flight-server/internal/infrastructure/router"
	"flight-server/internal/interface/mapper"
	"flight-server/internal/interface/repository"
	"flight-server/internal/usecase"
	"flight-server/pkg/logger"
	"flight-server/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Flight Server", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	seedMetrics := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("Failed to get PostgreSQL connection pool", "error", err)
	}
	if err := persistence.RunMigrations(sqlDB); err != nil {
		log.Fatal("Failed to run migrations", "error", err)
	}

	// Set up repositories
	txManager := repository.NewGormTransactionManager(gormDB)
	documentRepo := repository.NewMongoDocumentRepository(db)

	dataSeeder := usecase.NewDataSeeder(
		txManager,
		documentRepo,
		initialdata.Load(),
		usecase.DocumentMappers{
			Airport:  mapper.ToAirportDocument,
			Aircraft: mapper.ToAircraftDocument,
			Flight:   mapper.ToFlightDocument,
			Seat:     mapper.ToSeatDocument,
		},
		seedMetrics,
		log.With("component", "data_seeder"),
	)

	// Seed reference data before serving anything
	if cfg.SeedEnabled {
		seedCtx, seedCancel := context.WithTimeout(ctx, cfg.SeedTimeout)
		err := dataSeeder.Run(seedCtx)
		seedCancel()
		if err != nil {
			log.Fatal("Failed to seed reference data", "error", err)
		}
	} else {
		log.Warn("Data seeder disabled")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(dataSeeder, registry, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := sqlDB.Close(); err != nil {
		log.Error("PostgreSQL close error", "error", err)
	}

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flight Server stopped")
}
