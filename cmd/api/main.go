package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/wardrobe/docs/swagger"
	wardrobemigrations "github.com/ghuser/wardrobe/migrations/wardrobe"
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/migrator"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	wardrobeApi "github.com/ghuser/wardrobe/services/wardrobe/application/api"
	wardrobeServices "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	weatherApi "github.com/ghuser/wardrobe/services/weather/application/api"
	weatherServices "github.com/ghuser/wardrobe/services/weather/application/services"
)

// @title			Wardrobe API
// @version		1.0
// @description	Weather-based clothing recommendations over a personal wardrobe.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/
// @schemes		http https
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

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	a := &app.Application{Config: cfg, Logger: log}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := migrator.RunMigrations(ctx, cfg.DatabaseURL, wardrobemigrations.FS, log); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer pool.Close() //nolint:errcheck
		log.Info("database pool connected")
		a.Db = pool
	case config.StorageRedis:
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		a.Redis = redisClient
	}

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck
	a.EventBus = eventBus
	log.Info("event bus ready", "transport", eventBus.Transport())

	weatherSvcs, err := weatherServices.New(a)
	if err != nil {
		log.Error("failed to wire weather services", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	wardrobeSvcs, err := wardrobeServices.New(a, weatherSvcs.Provider)
	if err != nil {
		log.Error("failed to wire wardrobe services", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("wardrobe storage ready", "driver", cfg.StorageDriver, "key", cfg.WardrobeStorageKey)

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Storage:  wardrobeSvcs.Slot,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	registerRoutes(r, wardrobeSvcs, weatherSvcs, cfg.IsProduction())

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts every bounded context's routes.
func registerRoutes(r chi.Router, wardrobe *wardrobeServices.Services, weather *weatherServices.Services, isProduction bool) {
	wardrobeApi.WardrobeRoutes(r, wardrobe, isProduction)
	weatherApi.WeatherRoutes(r, weather, isProduction)
}
