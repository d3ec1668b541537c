package firestore

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/errors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the emulator named by FIRESTORE_EMULATOR_HOST.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "bloodbank-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func emulatorDonor() *entity.Donor {
	now := time.Now().UTC().Truncate(time.Microsecond)

	return &entity.Donor{
		ID:            uuid.New(),
		Name:          "Emulator Donor",
		Blood:         entity.BloodProfile{Group: entity.BloodGroupO, Rh: entity.RhNegative},
		WeightKg:      70,
		HemoglobinGdl: 14,
		City:          entity.CityLahore,
		IsAvailable:   true,
		Eligible:      entity.EligibilityYes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestEmulatorDonorReserveRace(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewDonorRepository(client)

	donor := emulatorDonor()
	require.NoError(t, repo.Create(ctx, donor))

	const racers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Reserve(ctx, donor.ID)
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()

				return
			}
			assert.ErrorIs(t, err, repository.ErrDonorUnavailable)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)

	got, err := repo.FindByID(ctx, donor.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestEmulatorTransactionRollback(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	tm := NewTransactionManager(client)
	repo := NewDonorRepository(client)

	donor := emulatorDonor()
	require.NoError(t, repo.Create(ctx, donor))

	errAbort := errors.New("abort")
	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.DonorRepo().Reserve(ctx, donor.ID); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	got, err := repo.FindByID(ctx, donor.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func TestEmulatorMatchLookup(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewMatchRepository(client)

	match := &entity.Match{
		ID:                uuid.New(),
		PatientID:         uuid.New(),
		DonorID:           uuid.New(),
		DonorBloodLabel:   "O-",
		PatientBloodLabel: "A+",
		City:              entity.CityLahore,
		CreatedAt:         time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Create(ctx, match))

	byDonor, err := repo.FindByDonorID(ctx, match.DonorID)
	require.NoError(t, err)
	assert.Equal(t, match.ID, byDonor.ID)

	require.NoError(t, repo.Delete(ctx, match.ID))

	_, err = repo.FindByPatientID(ctx, match.PatientID)
	assert.ErrorIs(t, err, repository.ErrMatchNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, match.ID), repository.ErrMatchNotFound)
}
