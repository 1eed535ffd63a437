// cmd/analyzer-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"deal-analyzer/internal/alerts"
	"deal-analyzer/internal/common/config"
	"deal-analyzer/internal/common/database"
	"deal-analyzer/internal/common/logger"
	"deal-analyzer/internal/common/observability"
	"deal-analyzer/internal/listings"
	"deal-analyzer/internal/models"
	"deal-analyzer/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting analyzer server...")

	obs := observability.New("analyzer-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch with retry (only when search is on) ---
	var searchIndex *listings.SearchIndex
	if cfg.Listings.SearchEnabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		searchIndex = listings.NewSearchIndex(esClient.Client, cfg.Listings.SearchIndex)
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Prepare storage ---
	repo := listings.NewRepository(pg.DB)
	if err := repo.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("schema setup failed", zap.Error(err))
	}

	// --- Wire the service ---
	defaults := models.InvestmentAssumptions{
		DownPaymentPercent:   cfg.Assumptions.DownPaymentPercent,
		InterestRate:         cfg.Assumptions.InterestRate,
		LoanTermYears:        cfg.Assumptions.LoanTermYears,
		ClosingCostsPercent:  cfg.Assumptions.ClosingCostsPercent,
		VacancyRatePercent:   cfg.Assumptions.VacancyRatePercent,
		ManagementFeePercent: cfg.Assumptions.ManagementFeePercent,
		MaintenancePercent:   cfg.Assumptions.MaintenancePercent,
		InsuranceAnnual:      cfg.Assumptions.InsuranceAnnual,
		AppreciationRate:     cfg.Assumptions.AppreciationRate,
	}

	service := listings.NewService(
		listings.NewGenerator(cfg.Listings.Seed),
		repo,
		listings.NewCache(rdb.Client, config.GetDuration(cfg.Listings.CacheTTL)),
		searchIndex,
		log,
	)

	notifier, err := alerts.NewNotifier(ctx, alerts.Config{
		EmailEnabled: cfg.Alerts.Email.Enabled,
		FromEmail:    cfg.Alerts.Email.FromEmail,
		ToEmail:      cfg.Alerts.Email.ToEmail,
		SMSEnabled:   cfg.Alerts.SMS.Enabled,
		PhoneNumber:  cfg.Alerts.SMS.PhoneNumber,
		Region:       cfg.Alerts.AWS.Region,
	}, log)
	if err != nil {
		zapLog.Fatal("notifier setup failed", zap.Error(err))
	}

	store := server.NewRedisAssumptionsStore(rdb.Client, defaults)
	handlers := server.NewHandlers(service, store, notifier, log, cfg.Listings.PageSize)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.New(handlers).Handler(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("forced shutdown", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
