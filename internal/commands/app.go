package commands

import (
	"context"
	"log/slog"

	"github.com/ledgerlift/ledgerlift/internal/chart"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
	portssvc "github.com/ledgerlift/ledgerlift/internal/core/ports/services"
	"github.com/ledgerlift/ledgerlift/internal/core/services"
	"github.com/ledgerlift/ledgerlift/internal/platform/config"
	"github.com/ledgerlift/ledgerlift/internal/repositories/database/pgsql"
	"github.com/ledgerlift/ledgerlift/pkg/database"
)

// App carries the shared wiring every command needs. Database connections are
// opened lazily: parse-only runs never touch PostgreSQL.
type App struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Chart  *chart.Chart
}

// NewApp builds the command wiring from loaded config.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		Cfg:    cfg,
		Logger: logger,
		Chart:  chart.Default(),
	}
}

// LocalServices wires the service container without persistence. Operations
// that hit a repository will fail; in-memory parsing and coding work fully.
func (a *App) LocalServices() *portssvc.ServiceContainer {
	return services.NewServiceContainer(a.Cfg, a.Chart, portsrepo.RepositoryProvider{})
}

// DBServices connects to PostgreSQL, applies migrations, and wires the full
// service container. The returned cleanup closes the pool.
func (a *App) DBServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	pool, err := database.NewPgxPool(ctx, a.Cfg.DatabaseURL, a.Cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(a.Cfg.DatabaseURL, "file://migrations", a.Logger); err != nil {
		database.ClosePgxPool(pool)
		return nil, nil, err
	}

	repos := pgsql.NewRepositoryProvider(pool)
	container := services.NewServiceContainer(a.Cfg, a.Chart, repos)
	cleanup := func() { database.ClosePgxPool(pool) }
	return container, cleanup, nil
}
