package repository

import (
	"context"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for patient persistence.
var (
	// ErrPatientNotFound is returned when a patient is not found.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrPatientAlreadyMatched is returned when a patient no longer needs a match.
	ErrPatientAlreadyMatched = errors.New("patient already matched")
)

// PatientRepository defines the interface for patient-related store operations.
type PatientRepository interface {
	// Create persists a new patient.
	Create(ctx context.Context, patient *entity.Patient) error

	// FindByID retrieves a patient by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// List retrieves every patient ordered by creation time, then ID.
	List(ctx context.Context) ([]*entity.Patient, error)

	// Update writes the profile fields of a patient. NeedsMatch is never written by Update.
	Update(ctx context.Context, patient *entity.Patient) error

	// Delete removes a patient by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkSatisfied flips NeedsMatch from true to false, returning ErrPatientAlreadyMatched
	// when it was already false.
	MarkSatisfied(ctx context.Context, id uuid.UUID) error

	// MarkNeedsMatch sets NeedsMatch to true regardless of its current value.
	MarkNeedsMatch(ctx context.Context, id uuid.UUID) error
}
