// Package persistence selects the record store driver named by configuration.
package persistence

import (
	"context"
	"log/slog"

	"bloodbank/config"
	"bloodbank/internal/domain/constants"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/errors"
	"bloodbank/internal/infra/persistence/firestore"
	"bloodbank/internal/infra/persistence/memory"
	"bloodbank/internal/infra/persistence/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Params holds dependencies shared by every store driver.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// Repositories are the ports provided to the use cases.
type Repositories struct {
	fx.Out

	TxManager   repository.TransactionManager
	DonorRepo   repository.DonorRepository
	PatientRepo repository.PatientRepository
	MatchRepo   repository.MatchRepository
}

// NewRepositories opens the configured store and returns its repositories.
func NewRepositories(params Params) (Repositories, error) {
	driver := constants.StoreDriverMemory
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	params.Logger.Info("Initializing record store", slog.String("driver", driver))

	switch driver {
	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
			Registry:  params.Registry,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:   postgres.NewTransactionManager(db),
			DonorRepo:   postgres.NewDonorRepository(db),
			PatientRepo: postgres.NewPatientRepository(db),
			MatchRepo:   postgres.NewMatchRepository(db),
		}, nil

	case constants.StoreDriverFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Ctx:       params.Ctx,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:   firestore.NewTransactionManager(client),
			DonorRepo:   firestore.NewDonorRepository(client),
			PatientRepo: firestore.NewPatientRepository(client),
			MatchRepo:   firestore.NewMatchRepository(client),
		}, nil

	case constants.StoreDriverMemory:
		store := memory.NewStore(params.Logger)

		return Repositories{
			TxManager:   store,
			DonorRepo:   memory.NewDonorRepository(store),
			PatientRepo: memory.NewPatientRepository(store),
			MatchRepo:   memory.NewMatchRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the repositories of the configured store.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
