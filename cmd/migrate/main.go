package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/wardrobe/migrations/wardrobe"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, wardrobe.FS, log); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
