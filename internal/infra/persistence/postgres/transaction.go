package postgres

import (
	"context"

	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// DonorRepo creates a donor repository bound to the transaction.
func (f *gormRepositoryFactory) DonorRepo() repository.DonorRepository {
	return NewDonorRepository(f.tx)
}

// PatientRepo creates a patient repository bound to the transaction.
func (f *gormRepositoryFactory) PatientRepo() repository.PatientRepository {
	return NewPatientRepository(f.tx)
}

// MatchRepo creates a match repository bound to the transaction.
func (f *gormRepositoryFactory) MatchRepo() repository.MatchRepository {
	return NewMatchRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one database transaction. GORM rolls back when fn fails or panics;
// fn's error is returned unchanged so use cases keep their own classification, while a
// failed begin or commit is an IOFailure.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.NewStoreError(err, "failed to run transaction")
	}
}
