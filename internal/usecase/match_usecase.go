package usecase

import (
	"context"

	"bloodbank/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientCandidates pairs a patient still needing a match with their candidate donors.
type PatientCandidates struct {
	Patient    *entity.Patient `json:"patient"`
	Candidates []*entity.Donor `json:"candidates"`
}

// MatchUsecase defines the match lifecycle: candidate computation, confirmation and release.
type MatchUsecase interface {
	// Candidates returns the eligible, available, compatible donors in the patient's city.
	// A patient who no longer needs a match has no candidates.
	Candidates(ctx context.Context, patientID uuid.UUID) ([]*entity.Donor, error)

	// Board returns the candidate list for every patient still needing a match.
	Board(ctx context.Context) ([]*PatientCandidates, error)

	// ConfirmMatch atomically creates a match, reserves the donor and satisfies the patient.
	ConfirmMatch(ctx context.Context, patientID, donorID uuid.UUID) (*entity.Match, error)

	// ReleaseMatch atomically deletes the match and returns its donor and patient to the pool.
	ReleaseMatch(ctx context.Context, matchID uuid.UUID) error

	// GetMatch retrieves a live match.
	GetMatch(ctx context.Context, matchID uuid.UUID) (*entity.Match, error)

	// ListMatches retrieves every live match.
	ListMatches(ctx context.Context) ([]*entity.Match, error)
}
