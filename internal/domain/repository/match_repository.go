package repository

import (
	"context"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when no live match has the given ID.
	ErrMatchNotFound = errors.New("match not found")
	// ErrDuplicateMatch is returned when the donor or patient is already referenced by a live match.
	ErrDuplicateMatch = errors.New("donor or patient already matched")
)

// MatchRepository defines the interface for match-related store operations.
// Matches are never updated in place.
type MatchRepository interface {
	// Create persists a new match.
	Create(ctx context.Context, match *entity.Match) error

	// FindByID retrieves a live match by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// FindByDonorID retrieves the live match reserving a donor, or ErrMatchNotFound.
	FindByDonorID(ctx context.Context, donorID uuid.UUID) (*entity.Match, error)

	// FindByPatientID retrieves the live match satisfying a patient, or ErrMatchNotFound.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) (*entity.Match, error)

	// List retrieves every live match ordered by creation time, then ID.
	List(ctx context.Context) ([]*entity.Match, error)

	// Delete removes a match by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
