package postgres

import (
	"context"
	"time"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the repository.PatientRepository interface.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{
		db: db,
	}
}

// Create persists a new patient.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if err := repo.db.WithContext(ctx).Create(fromPatientDomain(patient)).Error; err != nil {
		return domainerrors.NewStoreError(err, "failed to create patient")
	}

	return nil
}

// FindByID retrieves a patient by its unique ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find patient by ID")
	}

	return toPatientDomain(&patientM), nil
}

// List retrieves every patient ordered by creation time, then ID.
func (repo *patientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	var patientModels []*model.PatientModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&patientModels).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(patientModels))
	for _, patientM := range patientModels {
		patients = append(patients, toPatientDomain(patientM))
	}

	return patients, nil
}

// Update writes every column except needs_match and created_at.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", patient.ID).
		Select("name", "age", "blood_group", "rh_factor", "city", "contact",
			"diagnosis", "treatment_plan", "admission_date", "updated_at").
		Updates(fromPatientDomain(patient))

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to update patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// Delete removes a patient by its ID.
func (repo *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PatientModel{})

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to delete patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// MarkSatisfied flips needs_match with a conditional UPDATE.
func (repo *patientRepository) MarkSatisfied(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ? AND needs_match = ?", id, true).
		Updates(map[string]any{"needs_match": false, "updated_at": time.Now()})

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to mark patient satisfied")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return domainerrors.NewStoreError(err, "failed to check patient")
	}
	if count == 0 {
		return repository.ErrPatientNotFound
	}

	return repository.ErrPatientAlreadyMatched
}

// MarkNeedsMatch sets needs_match back to true.
func (repo *patientRepository) MarkNeedsMatch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"needs_match": true, "updated_at": time.Now()})

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to mark patient as needing a match")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:   data.ID,
		Name: data.Name,
		Age:  data.Age,
		Blood: entity.BloodProfile{
			Group: entity.BloodGroup(data.BloodGroup),
			Rh:    entity.RhFactor(data.RhFactor),
		},
		City:          entity.City(data.City),
		Contact:       data.Contact,
		Diagnosis:     data.Diagnosis,
		TreatmentPlan: data.TreatmentPlan,
		AdmissionDate: data.AdmissionDate,
		NeedsMatch:    data.NeedsMatch,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:            data.ID,
		Name:          data.Name,
		Age:           data.Age,
		BloodGroup:    string(data.Blood.Group),
		RhFactor:      string(data.Blood.Rh),
		City:          string(data.City),
		Contact:       data.Contact,
		Diagnosis:     data.Diagnosis,
		TreatmentPlan: data.TreatmentPlan,
		AdmissionDate: data.AdmissionDate,
		NeedsMatch:    data.NeedsMatch,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
