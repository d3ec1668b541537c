package postgres

import (
	"context"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// Create persists a new match. The unique indexes on donor_id and patient_id reject a second
// live match for either side.
func (repo *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	if err := repo.db.WithContext(ctx).Create(fromMatchDomain(match)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateMatch, "constraint %s", uniqueConstraintName(err))
		}

		return domainerrors.NewStoreError(err, "failed to create match")
	}

	return nil
}

// FindByID retrieves a live match by its unique ID.
func (repo *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByDonorID retrieves the live match reserving a donor.
func (repo *matchRepository) FindByDonorID(ctx context.Context, donorID uuid.UUID) (*entity.Match, error) {
	return repo.findOne(ctx, "donor_id = ?", donorID)
}

// FindByPatientID retrieves the live match satisfying a patient.
func (repo *matchRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) (*entity.Match, error) {
	return repo.findOne(ctx, "patient_id = ?", patientID)
}

func (repo *matchRepository) findOne(ctx context.Context, query string, arg uuid.UUID) (*entity.Match, error) {
	var matchM model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find match")
	}

	return toMatchDomain(&matchM), nil
}

// List retrieves every live match ordered by creation time, then ID.
func (repo *matchRepository) List(ctx context.Context) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&matchModels).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list matches")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// Delete removes a match by its ID.
func (repo *matchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MatchModel{})

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "failed to delete match")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMatchNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMatchDomain(data *model.MatchModel) *entity.Match {
	if data == nil {
		return nil
	}

	return &entity.Match{
		ID:                data.ID,
		PatientID:         data.PatientID,
		DonorID:           data.DonorID,
		DonorBloodLabel:   data.DonorBloodLabel,
		PatientBloodLabel: data.PatientBloodLabel,
		City:              entity.City(data.City),
		CreatedAt:         data.CreatedAt,
	}
}

func fromMatchDomain(data *entity.Match) *model.MatchModel {
	if data == nil {
		return nil
	}

	return &model.MatchModel{
		ID:                data.ID,
		PatientID:         data.PatientID,
		DonorID:           data.DonorID,
		DonorBloodLabel:   data.DonorBloodLabel,
		PatientBloodLabel: data.PatientBloodLabel,
		City:              string(data.City),
		CreatedAt:         data.CreatedAt,
	}
}
