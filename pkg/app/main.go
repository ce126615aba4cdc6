package app

import (
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item added", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save wardrobe", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database // nil unless STORAGE_DRIVER=postgres
	Redis    *cache.RedisClient // nil unless STORAGE_DRIVER=redis
	Logger   logger.Logger
	EventBus *events.EventBus
}
