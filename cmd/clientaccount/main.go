package main

import (
	"context"
	"log/slog"
	"os"

	"clientaccount/config"
	"clientaccount/internal/delivery"
	"clientaccount/internal/delivery/http"
	"clientaccount/internal/delivery/http/router/handler"
	"clientaccount/internal/domain/repository"
	"clientaccount/internal/errors"
	"clientaccount/internal/infra/auth"
	logs "clientaccount/internal/infra/log"
	"clientaccount/internal/infra/persistence/memory"
	"clientaccount/internal/infra/persistence/postgres"
	"clientaccount/internal/infra/validation"
	"clientaccount/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newClientAccountRepository,
		),
	)
}

// newClientAccountRepository picks the storage backend from storage.driver.
// The PostgreSQL connection is only opened for the postgres driver.
func newClientAccountRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.ClientAccountRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory client account storage; data is lost on restart")

		return memory.NewClientAccountRepository(), nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: lc,
			Config:    cfg,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewClientAccountRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			validation.New,
			validation.NewClientAccountValidator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewClientAccountService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewClientAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
