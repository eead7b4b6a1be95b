package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ramosvitor/tibiaset-backend/api/routes"
	"github.com/ramosvitor/tibiaset-backend/internal/accounts"
	"github.com/ramosvitor/tibiaset-backend/internal/builds"
	"github.com/ramosvitor/tibiaset-backend/internal/catalog"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
	"github.com/ramosvitor/tibiaset-backend/pkg/supabase"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Console:     cfg.App.IsDev(),
	})

	gateway, err := supabase.NewClient(cfg.Supabase)
	if err != nil {
		logg.Error(context.Background(), "failed to create store gateway", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(gateway)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	accountService, err := accounts.NewService(gateway, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create account service", err)
		os.Exit(1)
	}

	buildService, err := builds.NewService(gateway)
	if err != nil {
		logg.Error(context.Background(), "failed to create build service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, catalogService, accountService, buildService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
