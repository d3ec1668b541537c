package firestore

import (
	"context"

	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/status"
)

// transactionManager implements the domain's TransactionManager interface with
// Firestore transactions. RunTransaction retries fn when a commit loses a contention
// race, so fn may run more than once.
type transactionManager struct {
	client *firestore.Client
}

type repositoryFactory struct {
	store *docStore
}

// DonorRepo creates a donor repository bound to the transaction.
func (f *repositoryFactory) DonorRepo() repository.DonorRepository {
	return &donorRepository{store: f.store}
}

// PatientRepo creates a patient repository bound to the transaction.
func (f *repositoryFactory) PatientRepo() repository.PatientRepository {
	return &patientRepository{store: f.store}
}

// MatchRepo creates a match repository bound to the transaction.
func (f *repositoryFactory) MatchRepo() repository.MatchRepository {
	return &matchRepository{store: f.store}
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

// Execute runs fn inside one Firestore transaction.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&repositoryFactory{store: newTxStore(tm.client, tx)})
	})

	return commitFailure(err)
}

// commitFailure passes application errors through and wraps Firestore status errors as IOFailure.
func commitFailure(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}
	if _, ok := status.FromError(err); ok {
		return domainerrors.NewStoreError(err, "failed to commit transaction")
	}

	return err
}
