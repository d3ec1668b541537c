package usecase

import (
	"context"
	"time"

	"bloodbank/internal/domain/entity"

	"github.com/google/uuid"
)

// DonorInput carries donor profile fields from the caller. Weight and hemoglobin are
// free-form so they can be evaluated exactly as entered. There is no eligibility
// field: eligibility is always recomputed.
type DonorInput struct {
	Name               string
	BloodGroup         entity.BloodGroup
	RhFactor           entity.RhFactor
	LastDonationDate   *time.Time
	WeightKg           string
	HemoglobinGdl      string
	City               entity.City
	Contact            string
	OngoingMedications string
	ChronicDiseases    string
	Allergies          string
}

// PatientInput carries patient profile fields from the caller.
type PatientInput struct {
	Name          string
	Age           int
	BloodGroup    entity.BloodGroup
	RhFactor      entity.RhFactor
	City          entity.City
	Contact       string
	Diagnosis     string
	TreatmentPlan string
	AdmissionDate *time.Time
}

// RegistryUsecase is the donor and patient write path. It owns the derived fields:
// eligibility on every donor save, IsAvailable and NeedsMatch on creation.
type RegistryUsecase interface {
	// RegisterDonor creates an available donor with freshly evaluated eligibility.
	RegisterDonor(ctx context.Context, input *DonorInput) (*entity.Donor, error)

	// UpdateDonor replaces the donor's profile and re-evaluates eligibility.
	UpdateDonor(ctx context.Context, id uuid.UUID, input *DonorInput) (*entity.Donor, error)

	// GetDonor retrieves a donor.
	GetDonor(ctx context.Context, id uuid.UUID) (*entity.Donor, error)

	// ListDonors retrieves every donor.
	ListDonors(ctx context.Context) ([]*entity.Donor, error)

	// DeleteDonor removes a donor that is not reserved by a live match.
	DeleteDonor(ctx context.Context, id uuid.UUID) error

	// RegisterPatient creates a patient who needs a match.
	RegisterPatient(ctx context.Context, input *PatientInput) (*entity.Patient, error)

	// UpdatePatient replaces the patient's profile.
	UpdatePatient(ctx context.Context, id uuid.UUID, input *PatientInput) (*entity.Patient, error)

	// GetPatient retrieves a patient.
	GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// ListPatients retrieves every patient.
	ListPatients(ctx context.Context) ([]*entity.Patient, error)

	// DeletePatient removes a patient that is not satisfied by a live match.
	DeletePatient(ctx context.Context, id uuid.UUID) error
}
