package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/suretrust/underwriting-service/internal/application/usecase"
	"github.com/suretrust/underwriting-service/internal/domain/port"
	"github.com/suretrust/underwriting-service/internal/domain/service"
	"github.com/suretrust/underwriting-service/internal/infrastructure/config"
	"github.com/suretrust/underwriting-service/internal/infrastructure/crm"
	"github.com/suretrust/underwriting-service/internal/infrastructure/messaging"
	"github.com/suretrust/underwriting-service/internal/infrastructure/notification"
	pgrepo "github.com/suretrust/underwriting-service/internal/infrastructure/postgres"
	"github.com/suretrust/underwriting-service/internal/metrics"
	grpcserver "github.com/suretrust/underwriting-service/internal/presentation/grpc"
	"github.com/suretrust/underwriting-service/internal/presentation/rest"
	"github.com/suretrust/underwriting-service/pkg/auth"
	"github.com/suretrust/underwriting-service/pkg/kafka"
	"github.com/suretrust/underwriting-service/pkg/observability"
	"github.com/suretrust/underwriting-service/pkg/postgres"
)

const (
	serviceName = "underwriting-service"
	eventsTopic = "underwriting.events"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service terminated", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Service: serviceName,
		Level:   cfg.LogLevel,
		Format:  "json",
	})
	logger.Info("starting underwriting service",
		slog.String("environment", cfg.Environment),
		slog.String("grpc_port", cfg.GRPCPort),
		slog.String("http_port", cfg.HTTPPort),
	)

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: serviceName})
	if err != nil {
		return fmt.Errorf("failed to init metrics: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(kafka.Config{Brokers: []string{cfg.KafkaBroker}})
	defer producer.Close()

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.JWTSecret,
		Issuer: serviceName,
	})
	if err != nil {
		return fmt.Errorf("failed to init jwt service: %w", err)
	}

	// Infrastructure adapters.
	publisher := messaging.NewKafkaPublisher(producer, eventsTopic, logger)
	feedback := pgrepo.NewFeedbackRepository(pool)
	collector := crm.NewStubCollector(logger)

	var notifier port.Notifier
	if cfg.NotifyEndpoint != "" {
		notifier = notification.NewHTTPNotifier(cfg.NotifyEndpoint, logger)
	} else {
		logger.Warn("no notification endpoint configured, using log-only notifier")
		notifier = notification.NewLogNotifier(logger)
	}

	// Domain services and use cases.
	m := metrics.New(prometheus.DefaultRegisterer)
	analyzer := service.NewAnalyzer(logger)
	detector := service.NewFraudDetector(logger)
	engine := service.NewDecisionEngine(cfg.Thresholds, logger)
	executor := usecase.NewProcessExecutor(notifier, m, logger)

	processApplication := usecase.NewProcessApplication(
		collector, analyzer, detector, engine, executor, feedback, publisher, m, logger,
	)
	processBatch := usecase.NewProcessBatch(processApplication, 0, logger)
	getMetrics := usecase.NewGetMetrics(feedback)

	// Presentation.
	handler := grpcserver.NewUnderwritingHandler(processApplication, processBatch, getMetrics, logger)
	server, err := grpcserver.NewServer(cfg.GRPCAddress(), handler, jwtService, logger)
	if err != nil {
		return fmt.Errorf("failed to create grpc server: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metricsHandler)
	rest.NewHealthHandler(pool, logger).Register(mux)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	go func() {
		logger.Info("http server listening", slog.String("address", cfg.HTTPAddress()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	server.Stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", slog.String("error", err.Error()))
	}

	logger.Info("service stopped")
	return nil
}
