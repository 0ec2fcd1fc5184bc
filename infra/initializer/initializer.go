// Package initializer builds the application dependencies from the
// loaded configuration: logger, database connection, migrations and
// the unit of work.
package initializer

import (
	"fmt"

	"github.com/mfcarvalho/bookkeep/infra"
	infrarepo "github.com/mfcarvalho/bookkeep/infra/repository"
	"github.com/mfcarvalho/bookkeep/pkg/app"
	"github.com/mfcarvalho/bookkeep/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connection established")

	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("Database migrations applied")

	deps.Uow = infrarepo.NewUoW(db)
	return deps, nil
}
