package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific driver
// like GORM or Firestore.
type TransactionManager interface {
	// Execute runs a function within a single store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// Within one transaction every read must happen before the first write; Firestore rejects
// reads issued after a write.
type RepositoryFactory interface {
	// DonorRepo returns a DonorRepository instance bound to the current transaction.
	DonorRepo() DonorRepository

	// PatientRepo returns a PatientRepository instance bound to the current transaction.
	PatientRepo() PatientRepository

	// MatchRepo returns a MatchRepository instance bound to the current transaction.
	MatchRepo() MatchRepository
}
