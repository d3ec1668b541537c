package firestore

import (
	"testing"
	"time"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestDonorDocumentMapping(t *testing.T) {
	donated := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	donor := &entity.Donor{
		ID:                 uuid.New(),
		Name:               "Ayesha",
		Blood:              entity.BloodProfile{Group: entity.BloodGroupO, Rh: entity.RhNegative},
		LastDonationDate:   &donated,
		WeightKg:           61.5,
		HemoglobinGdl:      13.2,
		City:               entity.CityLahore,
		Contact:            "0300-1234567",
		OngoingMedications: "none",
		IsAvailable:        true,
		Eligible:           entity.EligibilityYes,
		CreatedAt:          donated,
		UpdatedAt:          donated,
	}

	doc := fromDonorDomain(donor)
	assert.Equal(t, "O", doc.BloodGroup)
	assert.Equal(t, "Negative", doc.RhFactor)
	assert.Equal(t, "Lahore", doc.City)
	assert.Equal(t, "Yes", doc.Eligible)

	assert.Equal(t, donor, toDonorDomain(donor.ID, doc))
}

func TestPatientDocumentMapping(t *testing.T) {
	patient := &entity.Patient{
		ID:         uuid.New(),
		Name:       "Bilal",
		Age:        42,
		Blood:      entity.BloodProfile{Group: entity.BloodGroupAB, Rh: entity.RhPositive},
		City:       entity.CityKarachi,
		Diagnosis:  "thalassemia",
		NeedsMatch: true,
		CreatedAt:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	doc := fromPatientDomain(patient)
	assert.True(t, doc.NeedsMatch)
	assert.Equal(t, patient, toPatientDomain(patient.ID, doc))
}

func TestMatchDocumentMapping(t *testing.T) {
	match := &entity.Match{
		ID:                uuid.New(),
		PatientID:         uuid.New(),
		DonorID:           uuid.New(),
		DonorBloodLabel:   "O-",
		PatientBloodLabel: "AB+",
		City:              entity.CityKarachi,
		CreatedAt:         time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	doc := fromMatchDomain(match)
	assert.Equal(t, match.DonorID.String(), doc.DonorID)

	got, err := toMatchDomain(match.ID, doc)
	require.NoError(t, err)
	assert.Equal(t, match, got)

	doc.PatientID = "not-a-uuid"
	_, err = toMatchDomain(match.ID, doc)
	assert.Error(t, err)
}

func TestCommitFailure(t *testing.T) {
	assert.NoError(t, commitFailure(nil))

	precondition := domainerrors.ErrPreconditionFailed.WithDetails("donor is not available")
	assert.Same(t, precondition, commitFailure(precondition))

	assert.ErrorIs(t, commitFailure(repository.ErrDonorNotFound), repository.ErrDonorNotFound)

	err := commitFailure(status.Error(codes.Aborted, "too much contention"))
	assert.ErrorIs(t, err, domainerrors.ErrIOFailure)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "no document")))
	assert.False(t, isNotFound(status.Error(codes.Unavailable, "unavailable")))
	assert.False(t, isNotFound(repository.ErrDonorNotFound))
}
