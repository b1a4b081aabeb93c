// Package cli implements the photokeep commands. The commands are the
// application's UI: they only call the public operations of the core
// and print what comes back.
package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/photokeep/photokeep/internal/config"
	"github.com/photokeep/photokeep/internal/database"
	"github.com/photokeep/photokeep/internal/database/audit"
	"github.com/photokeep/photokeep/internal/services"
	"github.com/photokeep/photokeep/internal/stock"
)

// appContext bundles everything a command needs once the library is
// open. close persists the graph one final time before the process
// exits.
type appContext struct {
	cfg   *config.Config
	db    *database.Database
	lib   *services.Library
	audit *audit.Repository
}

// bootstrap loads config, opens (or resets) the library file, loads the
// user graph and runs the stock seeder. dbPath overrides the configured
// database path when non-empty.
func bootstrap(dbPath string) (*appContext, error) {
	cfg := config.NewConfig()
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	db, err := database.OpenOrReset(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}

	store := database.OpenStore(db)
	auditRepo := audit.NewRepository(db.DB)
	lib := services.NewLibrary(store, auditRepo)

	if _, err := stock.NewSeeder(store, cfg.Stock.Dir, cfg.Stock.Minimum).Seed(); err != nil {
		logrus.WithError(err).Warn("stock seeding failed")
	}

	return &appContext{cfg: cfg, db: db, lib: lib, audit: auditRepo}, nil
}

func (c *appContext) close() {
	if err := c.lib.Commit(); err != nil {
		logrus.WithError(err).Error("failed to save library on exit")
	}
	if err := c.db.Close(); err != nil {
		logrus.WithError(err).Warn("failed to close library file")
	}
}

// parseDate accepts a date with or without a time of day.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or \"YYYY-MM-DD HH:MM:SS\")", value)
}
