package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bloodbank/internal/delivery/context"
	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/matching"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/errors"
	"bloodbank/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// registryService implements the RegistryUsecase interface.
type registryService struct {
	txManager   repository.TransactionManager
	donorRepo   repository.DonorRepository
	patientRepo repository.PatientRepository
	logger      *slog.Logger
	now         func() time.Time
}

// RegistryServiceParams holds dependencies for RegistryService, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	DonorRepo   repository.DonorRepository
	PatientRepo repository.PatientRepository
	Logger      *slog.Logger
}

// NewRegistryService is the constructor for registryService.
func NewRegistryService(params RegistryServiceParams) usecase.RegistryUsecase {
	return &registryService{
		txManager:   params.TxManager,
		donorRepo:   params.DonorRepo,
		patientRepo: params.PatientRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *registryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDonor validates the input, evaluates eligibility and stores an available donor.
func (srv *registryService) RegisterDonor(ctx context.Context, input *usecase.DonorInput) (*entity.Donor, error) {
	now := srv.now()
	donor := &entity.Donor{
		ID:          uuid.New(),
		IsAvailable: true,
		CreatedAt:   now,
	}
	if err := applyDonorInput(donor, input, now); err != nil {
		return nil, err
	}

	if err := srv.donorRepo.Create(ctx, donor); err != nil {
		return nil, storeFailure(err, "failed to create donor")
	}

	srv.log(ctx).Info("Donor registered",
		slog.String("donor_id", donor.ID.String()),
		slog.String("blood", donor.Blood.Label()),
		slog.String("city", string(donor.City)),
		slog.String("eligible", string(donor.Eligible)),
	)

	return donor, nil
}

// UpdateDonor rewrites the donor's profile. Availability is left to the match lifecycle.
func (srv *registryService) UpdateDonor(ctx context.Context, id uuid.UUID, input *usecase.DonorInput) (*entity.Donor, error) {
	donor, err := srv.donorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(err, repository.ErrDonorNotFound, "failed to find donor")
	}

	now := srv.now()
	if err := applyDonorInput(donor, input, now); err != nil {
		return nil, err
	}

	if err := srv.donorRepo.Update(ctx, donor); err != nil {
		return nil, lookupFailure(err, repository.ErrDonorNotFound, "failed to update donor")
	}

	srv.log(ctx).Info("Donor updated",
		slog.String("donor_id", donor.ID.String()),
		slog.String("eligible", string(donor.Eligible)),
	)

	return donor, nil
}

// GetDonor retrieves a donor.
func (srv *registryService) GetDonor(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	donor, err := srv.donorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(err, repository.ErrDonorNotFound, "failed to find donor")
	}

	return donor, nil
}

// ListDonors retrieves every donor.
func (srv *registryService) ListDonors(ctx context.Context) ([]*entity.Donor, error) {
	donors, err := srv.donorRepo.List(ctx)
	if err != nil {
		return nil, storeFailure(err, "failed to list donors")
	}

	return donors, nil
}

// DeleteDonor removes a donor unless a live match still reserves them.
func (srv *registryService) DeleteDonor(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.DonorRepo().FindByID(ctx, id); err != nil {
			return lookupFailure(err, repository.ErrDonorNotFound, "failed to find donor")
		}
		if err := ensureUnmatched(repos.MatchRepo().FindByDonorID(ctx, id)); err != nil {
			return preconditionOr(err, matching.ErrDonorMatched, "failed to find match by donor")
		}
		if err := repos.DonorRepo().Delete(ctx, id); err != nil {
			return lookupFailure(err, repository.ErrDonorNotFound, "failed to delete donor")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Donor deleted", slog.String("donor_id", id.String()))

	return nil
}

// RegisterPatient validates the input and stores a patient who needs a match.
func (srv *registryService) RegisterPatient(ctx context.Context, input *usecase.PatientInput) (*entity.Patient, error) {
	now := srv.now()
	patient := &entity.Patient{
		ID:         uuid.New(),
		NeedsMatch: true,
		CreatedAt:  now,
	}
	if err := applyPatientInput(patient, input, now); err != nil {
		return nil, err
	}

	if err := srv.patientRepo.Create(ctx, patient); err != nil {
		return nil, storeFailure(err, "failed to create patient")
	}

	srv.log(ctx).Info("Patient registered",
		slog.String("patient_id", patient.ID.String()),
		slog.String("blood", patient.Blood.Label()),
		slog.String("city", string(patient.City)),
	)

	return patient, nil
}

// UpdatePatient rewrites the patient's profile. NeedsMatch is left to the match lifecycle.
func (srv *registryService) UpdatePatient(ctx context.Context, id uuid.UUID, input *usecase.PatientInput) (*entity.Patient, error) {
	patient, err := srv.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(err, repository.ErrPatientNotFound, "failed to find patient")
	}

	if err := applyPatientInput(patient, input, srv.now()); err != nil {
		return nil, err
	}

	if err := srv.patientRepo.Update(ctx, patient); err != nil {
		return nil, lookupFailure(err, repository.ErrPatientNotFound, "failed to update patient")
	}

	srv.log(ctx).Info("Patient updated", slog.String("patient_id", patient.ID.String()))

	return patient, nil
}

// GetPatient retrieves a patient.
func (srv *registryService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := srv.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(err, repository.ErrPatientNotFound, "failed to find patient")
	}

	return patient, nil
}

// ListPatients retrieves every patient.
func (srv *registryService) ListPatients(ctx context.Context) ([]*entity.Patient, error) {
	patients, err := srv.patientRepo.List(ctx)
	if err != nil {
		return nil, storeFailure(err, "failed to list patients")
	}

	return patients, nil
}

// DeletePatient removes a patient unless a live match still satisfies them.
func (srv *registryService) DeletePatient(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.PatientRepo().FindByID(ctx, id); err != nil {
			return lookupFailure(err, repository.ErrPatientNotFound, "failed to find patient")
		}
		if err := ensureUnmatched(repos.MatchRepo().FindByPatientID(ctx, id)); err != nil {
			return preconditionOr(err, matching.ErrPatientMatched, "failed to find match by patient")
		}
		if err := repos.PatientRepo().Delete(ctx, id); err != nil {
			return lookupFailure(err, repository.ErrPatientNotFound, "failed to delete patient")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Patient deleted", slog.String("patient_id", id.String()))

	return nil
}

// applyDonorInput validates input and copies it onto donor, recomputing eligibility.
func applyDonorInput(donor *entity.Donor, input *usecase.DonorInput, now time.Time) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("donor input is required")
	}

	name := strings.TrimSpace(input.Name)
	blood := entity.BloodProfile{Group: input.BloodGroup, Rh: input.RhFactor}
	if err := validateProfile(name, blood, input.City); err != nil {
		return err
	}

	weight, ok := matching.ParseMeasurement(input.WeightKg)
	if !ok || weight <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("weight must be a positive number of kilograms")
	}
	hemoglobin, ok := matching.ParseMeasurement(input.HemoglobinGdl)
	if !ok || hemoglobin <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("hemoglobin must be a positive number of g/dL")
	}

	donor.Name = name
	donor.Blood = blood
	donor.LastDonationDate = input.LastDonationDate
	donor.WeightKg = weight
	donor.HemoglobinGdl = hemoglobin
	donor.City = input.City
	donor.Contact = strings.TrimSpace(input.Contact)
	donor.OngoingMedications = input.OngoingMedications
	donor.ChronicDiseases = input.ChronicDiseases
	donor.Allergies = input.Allergies
	donor.Eligible = matching.EvaluateMeasurements(weight, hemoglobin, input.LastDonationDate, now)
	donor.UpdatedAt = now

	return nil
}

// applyPatientInput validates input and copies it onto patient.
func applyPatientInput(patient *entity.Patient, input *usecase.PatientInput, now time.Time) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("patient input is required")
	}

	name := strings.TrimSpace(input.Name)
	blood := entity.BloodProfile{Group: input.BloodGroup, Rh: input.RhFactor}
	if err := validateProfile(name, blood, input.City); err != nil {
		return err
	}
	if input.Age < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("age must not be negative")
	}

	patient.Name = name
	patient.Age = input.Age
	patient.Blood = blood
	patient.City = input.City
	patient.Contact = strings.TrimSpace(input.Contact)
	patient.Diagnosis = input.Diagnosis
	patient.TreatmentPlan = input.TreatmentPlan
	patient.AdmissionDate = input.AdmissionDate
	patient.UpdatedAt = now

	return nil
}

func validateProfile(name string, blood entity.BloodProfile, city entity.City) error {
	switch {
	case name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case !blood.Group.IsValid():
		return domainerrors.ErrValidationFailed.WithCause(errors.Errorf("unknown blood group %q", blood.Group))
	case !blood.Rh.IsValid():
		return domainerrors.ErrValidationFailed.WithCause(errors.Errorf("unknown rh factor %q", blood.Rh))
	case !city.IsValid():
		return domainerrors.ErrValidationFailed.WithCause(errors.Errorf("unknown city %q", city))
	default:
		return nil
	}
}
