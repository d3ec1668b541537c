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

// donorRepository implements the repository.DonorRepository interface.
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository is the constructor for donorRepository.
func NewDonorRepository(db *gorm.DB) repository.DonorRepository {
	return &donorRepository{
		db: db,
	}
}

// Create persists a new donor.
func (repo *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	if err := repo.db.WithContext(ctx).Create(fromDonorDomain(donor)).Error; err != nil {
		return domainerrors.NewStoreError(err, "failed to create donor")
	}

	return nil
}

// FindByID retrieves a donor by its unique ID.
func (repo *donorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	var donorM model.DonorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find donor by ID")
	}

	return toDonorDomain(&donorM), nil
}

// List retrieves every donor ordered by creation time, then ID.
func (repo *donorRepository) List(ctx context.Context) ([]*entity.Donor, error) {
	var donorModels []*model.DonorModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&donorModels).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list donors")
	}

	donors := make([]*entity.Donor, 0, len(donorModels))
	for _, donorM := range donorModels {
		donors = append(donors, toDonorDomain(donorM))
	}

	return donors, nil
}

// Update writes every column except is_available and created_at.
func (repo *donorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)
	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ?", donor.ID).
		Select("name", "blood_group", "rh_factor", "last_donation_date", "weight_kg", "hemoglobin_gdl",
			"city", "contact", "ongoing_medications", "chronic_diseases", "allergies", "eligible", "updated_at").
		Updates(donorM)

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to update donor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// Delete removes a donor by its ID.
func (repo *donorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DonorModel{})

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to delete donor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// Reserve flips is_available with a conditional UPDATE so concurrent reservations serialize on the row.
func (repo *donorRepository) Reserve(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ? AND is_available = ?", id, true).
		Updates(map[string]any{"is_available": false, "updated_at": time.Now()})

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to reserve donor")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	exists, err := repo.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrDonorNotFound
	}

	return repository.ErrDonorUnavailable
}

// Restore sets is_available back to true.
func (repo *donorRepository) Restore(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_available": true, "updated_at": time.Now()})

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to restore donor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

func (repo *donorRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewStoreError(err, "failed to check donor")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toDonorDomain(data *model.DonorModel) *entity.Donor {
	if data == nil {
		return nil
	}

	return &entity.Donor{
		ID:   data.ID,
		Name: data.Name,
		Blood: entity.BloodProfile{
			Group: entity.BloodGroup(data.BloodGroup),
			Rh:    entity.RhFactor(data.RhFactor),
		},
		LastDonationDate:   data.LastDonationDate,
		WeightKg:           data.WeightKg,
		HemoglobinGdl:      data.HemoglobinGdl,
		City:               entity.City(data.City),
		Contact:            data.Contact,
		OngoingMedications: data.OngoingMedications,
		ChronicDiseases:    data.ChronicDiseases,
		Allergies:          data.Allergies,
		IsAvailable:        data.IsAvailable,
		Eligible:           entity.Eligibility(data.Eligible),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromDonorDomain(data *entity.Donor) *model.DonorModel {
	if data == nil {
		return nil
	}

	return &model.DonorModel{
		ID:                 data.ID,
		Name:               data.Name,
		BloodGroup:         string(data.Blood.Group),
		RhFactor:           string(data.Blood.Rh),
		LastDonationDate:   data.LastDonationDate,
		WeightKg:           data.WeightKg,
		HemoglobinGdl:      data.HemoglobinGdl,
		City:               string(data.City),
		Contact:            data.Contact,
		OngoingMedications: data.OngoingMedications,
		ChronicDiseases:    data.ChronicDiseases,
		Allergies:          data.Allergies,
		IsAvailable:        data.IsAvailable,
		Eligible:           string(data.Eligible),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
