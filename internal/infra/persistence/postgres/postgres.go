// Package postgres stores donors, patients and matches in PostgreSQL through GORM.
package postgres

import (
	"context"
	"log/slog"

	"bloodbank/config"
	"bloodbank/internal/domain/lifecycle"
	"bloodbank/internal/errors"
	"bloodbank/internal/infra/persistence/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// dbStatsName labels the go_sql_* pool metrics.
const dbStatsName = "registry"

// Params defines the required parameters for the PostgreSQL record store
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// registryTables are migrated on start. matches carries the unique donor and patient
// indexes that back the one live match per donor and per patient rule.
var registryTables = []any{
	&model.DonorModel{},
	&model.PatientModel{},
	&model.MatchModel{},
}

// New opens the PostgreSQL connection pool. The database is pinged and the registry
// tables migrated when the fx app starts; pool statistics are exported when a
// Prometheus registry is available.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres store driver")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement atomicity comes from TransactionManager.Execute, so GORM's implicit
	// per-statement transaction is disabled.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil {
		if err := params.Registry.Register(collectors.NewDBStatsCollector(sqlDB, dbStatsName)); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := db.WithContext(ctx).AutoMigrate(registryTables...); err != nil {
				return errors.Wrap(err, "failed to migrate registry tables")
			}

			params.Logger.Info("PostgreSQL record store ready")

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}
