package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	wardrobeEvents "github.com/ghuser/wardrobe/services/wardrobe/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// Only the postgres transport crosses process boundaries.
	if cfg.StorageDriver != config.StoragePostgres {
		log.Error("worker requires STORAGE_DRIVER=postgres", "storage_driver", cfg.StorageDriver)
		os.Exit(1) //nolint:gocritic
	}

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	changes, err := telemetry.NewCounter("wardrobe.changes", "Wardrobe mutations observed by the audit worker, by kind and type")
	if err != nil {
		log.Error("failed to create changes counter", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := registerSubscribers(subCtx, eventBus, handleWardrobeChanged(log, changes), log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// Without OTLP, wardrobe.changes is only visible through this scrape endpoint.
	var metricsSrv *http.Server
	if cfg.WorkerMetricsAddr != "" {
		metricsSrv = newMetricsServer(cfg.WorkerMetricsAddr, metricsHandler)
		go func() {
			log.Info("worker metrics listening", "addr", metricsSrv.Addr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("worker metrics server error", "error", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()
	if metricsSrv != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("worker metrics shutdown", "error", err)
		}
		stop()
	}

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// newMetricsServer exposes the Prometheus exporter at /metrics.
func newMetricsServer(addr string, metrics http.Handler) *http.Server {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", metrics)
	return httpx.NewServer(addr, r)
}

type subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// registerSubscribers attaches handler to every wardrobe topic.
func registerSubscribers(ctx context.Context, bus subscriber, handler func(context.Context, *message.Message) error, log logger.Logger) error {
	for _, topic := range wardrobeEvents.Topics {
		errCh, err := bus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	log.Info("event subscribers registered", "topics", wardrobeEvents.Topics)
	return nil
}

// handleWardrobeChanged writes one audit record per wardrobe mutation.
// Redelivered messages are logged again; the audit trail is keyed by event_id.
func handleWardrobeChanged(log logger.Logger, changes *telemetry.Counter) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := decodeEvent(msg)
		if err != nil {
			// A payload that cannot be decoded will never succeed on retry.
			log.ErrorContext(ctx, "dropping malformed wardrobe event",
				"message_uuid", msg.UUID, "error", err)
			return nil
		}

		log.InfoContext(ctx, "wardrobe changed",
			"event_id", evt.EventID,
			"kind", evt.Kind,
			"item_id", evt.ItemID,
			"name", evt.Name,
			"type", evt.Type,
			"season", evt.Season,
			"occurred_at", evt.OccurredAt,
		)
		changes.Add(ctx, "kind", string(evt.Kind), "type", evt.Type)
		return nil
	}
}

func decodeEvent(msg *message.Message) (wardrobeEvents.WardrobeChangedEvent, error) {
	var evt wardrobeEvents.WardrobeChangedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return evt, err
	}
	if evt.Kind == "" || evt.ItemID == "" {
		return evt, fmt.Errorf("event %s: missing kind or item_id", evt.EventID)
	}
	return evt, nil
}
