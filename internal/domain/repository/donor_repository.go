// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for donor persistence.
var (
	// ErrDonorNotFound is returned when a donor is not found.
	ErrDonorNotFound = errors.New("donor not found")
	// ErrDonorUnavailable is returned when a reservation loses the race for a donor.
	ErrDonorUnavailable = errors.New("donor is not available")
)

// DonorRepository defines the interface for donor-related store operations.
type DonorRepository interface {
	// Create persists a new donor.
	Create(ctx context.Context, donor *entity.Donor) error

	// FindByID retrieves a donor by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error)

	// List retrieves every donor ordered by creation time, then ID.
	List(ctx context.Context) ([]*entity.Donor, error)

	// Update writes the profile, medical fields and eligibility of a donor.
	// IsAvailable is never written by Update.
	Update(ctx context.Context, donor *entity.Donor) error

	// Delete removes a donor by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Reserve flips IsAvailable from true to false. It returns ErrDonorUnavailable when the
	// donor was already reserved, so at most one concurrent reservation wins.
	Reserve(ctx context.Context, id uuid.UUID) error

	// Restore sets IsAvailable to true regardless of its current value.
	Restore(ctx context.Context, id uuid.UUID) error
}
