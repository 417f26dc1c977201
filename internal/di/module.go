package di

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/maropko/parceltrack/internal/app"
	"github.com/maropko/parceltrack/internal/config"
	"github.com/maropko/parceltrack/internal/domain/repository"
	"github.com/maropko/parceltrack/internal/logger"
	"github.com/maropko/parceltrack/internal/pkg/auth"
	"github.com/maropko/parceltrack/internal/server/http/router"
	"github.com/maropko/parceltrack/internal/storage/memory"
	"github.com/maropko/parceltrack/internal/storage/postgres"
	"github.com/maropko/parceltrack/internal/usecase"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storageModule,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// storageModule selects the persistence backend. A configured database URI
// selects PostgreSQL; otherwise orders live in process memory.
var storageModule = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.TrackingRepository { return f.Tracking() },
		func(f repository.Factory) repository.AdminRepository { return f.Admins() },
	),
)

type storageParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newFactory(p storageParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory storage")
		return memory.New(), nil
	}

	storage, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
	return storage, nil
}
