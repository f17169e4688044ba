// Package ingest is the standalone webhook gateway: it accepts marketplace
// notifications and publishes them to the queue the api workers consume.
package ingest

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

	"sellerops/config"
	"sellerops/internal/shared/idempotency"
	"sellerops/internal/shared/messaging"
	"sellerops/internal/shared/queue"
	"sellerops/internal/shared/redisclient"
	"sellerops/internal/shared/webhook"
	"sellerops/pkg/health"
	"sellerops/pkg/logger"
	"sellerops/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout   = 5 * time.Second
	receivedKeyPrefix = "sellerops:webhook:received:"
)

func NewGinEngine(l *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware(), metrics.GinMiddleware(), logger.RequestLogger(l), gin.Recovery())
	return engine
}

// Run bootstraps the gateway and blocks until SIGINT/SIGTERM.
func Run(cfg config.IngestConfig) error {
	l := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
		Service: "ingest",
	})
	slog.SetDefault(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport, err := queue.New(ctx, cfg.Queue, false)
	if err != nil {
		return fmt.Errorf("ingest - Run - queue.New: %w", err)
	}
	defer transport.Close()

	registry := health.NewRegistry()
	if transport.Checker != nil {
		registry.Register(transport.Checker)
	}

	var received messaging.IdempotencyStore = idempotency.NewMemoryStore()
	if cfg.RedisURL != "" {
		rdb, err := redisclient.New(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("ingest - Run - redisclient.New: %w", err)
		}
		defer rdb.Close()
		registry.Register(health.NewRedisChecker(rdb))
		received = idempotency.NewRedisStore(rdb, receivedKeyPrefix)
	}

	processor := webhook.NewDedupProcessor(webhook.NewAsyncProcessor(transport.Publisher), received, cfg.Queue.DedupTTL)

	engine := NewGinEngine(l)
	NewRouter(webhook.NewHandler(processor), registry).SetUp(engine)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("Ingest service started",
			slog.Int("port", cfg.Port),
			slog.String("driver", transport.Driver),
			slog.String("queue", transport.Name))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ingest - Run - http server: %w", err)
		}
	}
	l.Info("Shutting down Ingest service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ingest - Run - shutdown: %w", err)
	}

	l.Info("Ingest service stopped")
	return nil
}
