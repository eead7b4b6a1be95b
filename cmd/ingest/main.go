package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/ramosvitor/tibiaset-backend/internal/ingest"
	"github.com/ramosvitor/tibiaset-backend/internal/scrape"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	"github.com/ramosvitor/tibiaset-backend/pkg/db"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
)

// The ingest job exits non-zero only when it cannot reach the database at
// startup. Per-entity scrape failures are logged and skipped and still end
// the run with a zero exit.
func main() {
	logg := logger.New(logger.Options{ServiceName: "ingest"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "ingest",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Console:     cfg.App.IsDev(),
	})

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	if cfg.DB.DSN == "" {
		logg.Error(ctx, config.EnvDBDSN+" must be set for the ingest job", nil)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	scraper, err := scrape.NewClient(cfg.Scrape)
	if err != nil {
		logg.Error(ctx, "failed to create scrape client", err)
		os.Exit(1)
	}

	svc, err := ingest.NewService(scraper, ingest.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(ctx, "failed to create ingest service", err)
		os.Exit(1)
	}

	logg.Info(ctx, "starting catalog ingest")

	summary, err := svc.Run(ctx)
	if err != nil {
		logg.Error(ctx, "ingest aborted", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"monsters_upserted": summary.MonstersUpserted,
		"monsters_skipped":  summary.MonstersSkipped,
		"items_upserted":    summary.ItemsUpserted,
		"items_skipped":     summary.ItemsSkipped,
	})
	logg.Info(ctx, "catalog ingest finished")
}
