package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/mfcarvalho/bookkeep/infra/initializer"
	"github.com/mfcarvalho/bookkeep/pkg/app"
	"github.com/mfcarvalho/bookkeep/pkg/config"
	"github.com/mfcarvalho/bookkeep/webapi"
)

// @title Bookkeep API
// @version 1.0.0
// @description Ledger API for accounts, transfers, payments and creditors
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	application := app.New(*deps, cfg)

	fiberApp := webapi.SetupApp(application)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("Starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
