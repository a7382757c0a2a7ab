package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"potluck-backend/internal/config"
	"potluck-backend/internal/jobs"
	"potluck-backend/internal/logger"
	"potluck-backend/internal/repository/postgres"
	"potluck-backend/internal/scheduler"
	"potluck-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'expire-holds')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Potluck Hold Sweeper...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services. The sweeper resolves no requests itself, so the
	// dispatcher and email service stay out of its dependency set.
	admissionSvc := service.NewAdmissionService(
		store.JoinRequestRepository,
		store.EventRepository,
		service.NewNoopDispatcher(),
		cfg,
	)

	jobRunner := jobs.NewJobRunner(admissionSvc, cfg)

	// Handle run-once mode
	if *runOnce != "" {
		switch *runOnce {
		case "expire-holds":
			jobRunner.ExpireHolds()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Start scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
}
