package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/alerting"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/config"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/core/api"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/detector"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/ingest"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/lifecycle"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/registry"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/stream"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Fatal().Err(err).Msg("Core service failed")
	}
}

func run() error {
	configPath := flag.String("config", "/etc/vigilanceos/core.json", "Path to core config file")
	flag.Parse()

	cfg, err := config.LoadCoreConfig(*configPath)
	if err != nil {
		return err
	}

	// The process-wide logger backs bootstrap and fatal logging; components
	// get their own injected loggers below.
	if err := logger.Init(cfg.Logging); err != nil {
		return err
	}

	logger.Info().Str("config", *configPath).Msg("Configuration loaded")

	mainLogger, err := lifecycle.CreateComponentLogger("core", cfg.Logging)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbLogger, err := lifecycle.CreateComponentLogger("db", cfg.Logging)
	if err != nil {
		return err
	}

	database, err := db.New(ctx, &cfg.Database, dbLogger)
	if err != nil {
		return err
	}
	defer database.Close()

	broadcaster := stream.NewBroadcaster(0, mainLogger)

	var (
		notifier *alerting.Notifier
		events   *alerting.EventPublisher
	)

	if cfg.NotifierURL != "" {
		notifier = alerting.NewNotifier(cfg.NotifierURL)
	}

	if cfg.NATS != nil && cfg.NATS.URL != "" {
		publisher, nc, err := alerting.ConnectEventPublisher(cfg.NATS)
		if err != nil {
			return err
		}
		defer nc.Close()

		events = publisher
	}

	alerts := alerting.NewManager(database, broadcaster, notifier, events, mainLogger)

	var predictor *detector.Predictor
	if cfg.DetectorURL != "" {
		predictor = detector.NewPredictor(cfg.DetectorURL)
	}

	taskTimeout, err := parseTaskTimeout(cfg.Evaluator.TaskTimeout)
	if err != nil {
		return err
	}

	pool := ingest.NewWorkerPool(cfg.Evaluator.Workers, cfg.Evaluator.QueueSize, taskTimeout, mainLogger)

	pipeline := ingest.NewPipeline(
		registry.New(database, mainLogger),
		database,
		broadcaster,
		alerts,
		predictor,
		pool,
		mainLogger,
	)
	defer pipeline.Close()

	server := api.NewAPIServer(cfg.CORS,
		api.WithStore(database),
		api.WithPipeline(pipeline),
		api.WithAlerts(alerts),
		api.WithBroadcaster(broadcaster),
		api.WithAPIKey(cfg.APIKey),
		api.WithLogger(mainLogger),
	)

	errCh := make(chan error, 1)

	go func() {
		mainLogger.Info().Str("addr", cfg.ListenAddr).Msg("Core service listening")

		if err := server.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	mainLogger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func parseTaskTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}

	return time.ParseDuration(raw)
}
