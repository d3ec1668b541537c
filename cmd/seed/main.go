package main

import (
	"context"
	"log/slog"

	"bloodbank/config"
	logs "bloodbank/internal/infra/log"
	"bloodbank/internal/infra/persistence"
	"bloodbank/internal/infra/seed"
	"bloodbank/internal/usecase"
	"bloodbank/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Registry usecase.RegistryUsecase
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			impl.NewRegistryService,
		),
		persistence.Module,
		fx.Invoke(run),
	).Run()
}

func run(params runParams) error {
	cfg := params.Config.Seed
	if cfg == nil || cfg.BucketURL == "" || cfg.Key == "" {
		return errors.New("seed.bucketUrl and seed.key are required")
	}

	result, err := seed.NewLoader(params.Registry, params.Logger).Load(params.Ctx, cfg.BucketURL, cfg.Key)
	if err != nil {
		return err
	}

	params.Logger.Info("Seeding finished",
		slog.Int("donors", result.DonorsRegistered),
		slog.Int("patients", result.PatientsRegistered),
		slog.Int("rejected", len(result.Rejected)),
	)

	return params.Shutdown()
}
