package postgres

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/matching"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/infra/persistence/model"
	"bloodbank/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB connects to the database named by BLOODBANK_TEST_POSTGRES_DSN and migrates the
// registry tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("BLOODBANK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("BLOODBANK_TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(registryTables...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func seedDonor(t *testing.T, db *gorm.DB, label string) *entity.Donor {
	t.Helper()

	blood, ok := entity.ParseBloodLabel(label)
	require.True(t, ok)
	now := time.Now().UTC().Truncate(time.Microsecond)
	donor := &entity.Donor{
		ID:            uuid.New(),
		Name:          "Postgres Donor",
		Blood:         blood,
		WeightKg:      70,
		HemoglobinGdl: 14,
		City:          entity.CityMultan,
		IsAvailable:   true,
		Eligible:      entity.EligibilityYes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, NewDonorRepository(db).Create(context.Background(), donor))
	t.Cleanup(func() { db.Where("id = ?", donor.ID).Delete(&model.DonorModel{}) })

	return donor
}

func seedPatient(t *testing.T, db *gorm.DB, label string) *entity.Patient {
	t.Helper()

	blood, ok := entity.ParseBloodLabel(label)
	require.True(t, ok)
	now := time.Now().UTC().Truncate(time.Microsecond)
	patient := &entity.Patient{
		ID:         uuid.New(),
		Name:       "Postgres Patient",
		Age:        12,
		Blood:      blood,
		City:       entity.CityMultan,
		NeedsMatch: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, NewPatientRepository(db).Create(context.Background(), patient))
	t.Cleanup(func() {
		db.Where("patient_id = ?", patient.ID).Delete(&model.MatchModel{})
		db.Where("id = ?", patient.ID).Delete(&model.PatientModel{})
	})

	return patient
}

func TestPostgresDonorReserve(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDonorRepository(db)
	donor := seedDonor(t, db, "O-")

	require.NoError(t, repo.Reserve(ctx, donor.ID))
	assert.ErrorIs(t, repo.Reserve(ctx, donor.ID), repository.ErrDonorUnavailable)
	assert.ErrorIs(t, repo.Reserve(ctx, uuid.New()), repository.ErrDonorNotFound)

	require.NoError(t, repo.Restore(ctx, donor.ID))
	got, err := repo.FindByID(ctx, donor.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func TestPostgresPatientMarkSatisfied(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPatientRepository(db)
	patient := seedPatient(t, db, "A+")

	require.NoError(t, repo.MarkSatisfied(ctx, patient.ID))
	assert.ErrorIs(t, repo.MarkSatisfied(ctx, patient.ID), repository.ErrPatientAlreadyMatched)
	assert.ErrorIs(t, repo.MarkSatisfied(ctx, uuid.New()), repository.ErrPatientNotFound)
}

func TestPostgresMatchCreate_UniqueIndexes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMatchRepository(db)
	donor := seedDonor(t, db, "O-")
	first := seedPatient(t, db, "A+")
	second := seedPatient(t, db, "B+")
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, entity.NewMatch(first, donor, now)))

	err := repo.Create(ctx, entity.NewMatch(second, donor, now))
	assert.ErrorIs(t, err, repository.ErrDuplicateMatch)

	other := seedDonor(t, db, "O+")
	err = repo.Create(ctx, entity.NewMatch(first, other, now))
	assert.ErrorIs(t, err, repository.ErrDuplicateMatch)
}

func TestPostgresConfirmMatchRace(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	donor := seedDonor(t, db, "O-")

	const racers = 4
	patients := make([]*entity.Patient, racers)
	for i := range patients {
		patients[i] = seedPatient(t, db, "AB+")
	}

	matches := impl.NewMatchService(impl.MatchServiceParams{
		TxManager: NewTransactionManager(db),
		Logger:    slog.New(slog.DiscardHandler),
	})

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  []uuid.UUID
		rejected int
	)
	for _, patient := range patients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := matches.ConfirmMatch(ctx, patient.ID, donor.ID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, patient.ID)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
			rejected++
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, racers-1, rejected)

	gotDonor, err := NewDonorRepository(db).FindByID(ctx, donor.ID)
	require.NoError(t, err)
	assert.False(t, gotDonor.IsAvailable)

	match, err := NewMatchRepository(db).FindByDonorID(ctx, donor.ID)
	require.NoError(t, err)
	assert.Equal(t, winners[0], match.PatientID)

	for _, patient := range patients {
		got, err := NewPatientRepository(db).FindByID(ctx, patient.ID)
		require.NoError(t, err)
		assert.Equal(t, patient.ID != winners[0], got.NeedsMatch)
	}

	_, err = matches.ConfirmMatch(ctx, patients[0].ID, donor.ID)
	require.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
	assert.ErrorIs(t, err, matching.ErrDonorUnavailable)
}
