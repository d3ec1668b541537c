package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seedDonor(t *testing.T, store *Store, createdAt time.Time) *entity.Donor {
	t.Helper()

	donor := &entity.Donor{
		ID:          uuid.New(),
		Name:        "Ayesha",
		Blood:       entity.BloodProfile{Group: entity.BloodGroupO, Rh: entity.RhNegative},
		City:        entity.CityKarachi,
		IsAvailable: true,
		Eligible:    entity.EligibilityYes,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, NewDonorRepository(store).Create(context.Background(), donor))

	return donor
}

func TestStore_ExecuteCommitsOnSuccess(t *testing.T) {
	store := newTestStore()
	donor := seedDonor(t, store, time.Now())

	err := store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		return repos.DonorRepo().Reserve(context.Background(), donor.ID)
	})
	require.NoError(t, err)

	found, err := NewDonorRepository(store).FindByID(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.False(t, found.IsAvailable)
}

func TestStore_ExecuteRollsBackOnError(t *testing.T) {
	store := newTestStore()
	donor := seedDonor(t, store, time.Now())
	boom := errors.New("boom")

	err := store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.DonorRepo().Reserve(context.Background(), donor.ID))

		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := NewDonorRepository(store).FindByID(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.True(t, found.IsAvailable)
}

func TestStore_ExecuteRejectsCancelledContext(t *testing.T) {
	store := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}

func TestStore_ConcurrentReserveHasOneWinner(t *testing.T) {
	store := newTestStore()
	donor := seedDonor(t, store, time.Now())

	const workers = 16
	var wins, losses atomic.Int32
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
				return repos.DonorRepo().Reserve(context.Background(), donor.ID)
			})
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, repository.ErrDonorUnavailable):
				losses.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(workers-1), losses.Load())
}

func TestDonorRepository_ListOrdersByCreationThenID(t *testing.T) {
	store := newTestStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	third := seedDonor(t, store, base.Add(2*time.Hour))
	first := seedDonor(t, store, base)
	second := seedDonor(t, store, base.Add(time.Hour))

	donors, err := NewDonorRepository(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 3)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID}, []uuid.UUID{donors[0].ID, donors[1].ID, donors[2].ID})
}

func TestDonorRepository_UpdateKeepsAvailability(t *testing.T) {
	store := newTestStore()
	repo := NewDonorRepository(store)
	donor := seedDonor(t, store, time.Now())
	require.NoError(t, repo.Reserve(context.Background(), donor.ID))

	donor.Name = "Ayesha Khan"
	donor.IsAvailable = true
	require.NoError(t, repo.Update(context.Background(), donor))

	found, err := repo.FindByID(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha Khan", found.Name)
	assert.False(t, found.IsAvailable)
}

func TestDonorRepository_ReturnsCopies(t *testing.T) {
	store := newTestStore()
	repo := NewDonorRepository(store)
	donor := seedDonor(t, store, time.Now())

	found, err := repo.FindByID(context.Background(), donor.ID)
	require.NoError(t, err)
	found.IsAvailable = false

	again, err := repo.FindByID(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.True(t, again.IsAvailable)
}

func TestDonorRepository_NotFound(t *testing.T) {
	repo := NewDonorRepository(newTestStore())
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, repository.ErrDonorNotFound)
	require.ErrorIs(t, repo.Reserve(ctx, uuid.New()), repository.ErrDonorNotFound)
	require.ErrorIs(t, repo.Restore(ctx, uuid.New()), repository.ErrDonorNotFound)
	require.ErrorIs(t, repo.Delete(ctx, uuid.New()), repository.ErrDonorNotFound)
}

func TestPatientRepository_MarkSatisfiedOnce(t *testing.T) {
	store := newTestStore()
	repo := NewPatientRepository(store)
	ctx := context.Background()
	patient := &entity.Patient{
		ID:         uuid.New(),
		Name:       "Bilal",
		Blood:      entity.BloodProfile{Group: entity.BloodGroupA, Rh: entity.RhPositive},
		City:       entity.CityLahore,
		NeedsMatch: true,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, patient))

	require.NoError(t, repo.MarkSatisfied(ctx, patient.ID))
	require.ErrorIs(t, repo.MarkSatisfied(ctx, patient.ID), repository.ErrPatientAlreadyMatched)

	require.NoError(t, repo.MarkNeedsMatch(ctx, patient.ID))
	found, err := repo.FindByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.True(t, found.NeedsMatch)
}

func TestMatchRepository_RejectsSecondLiveMatchForDonor(t *testing.T) {
	repo := NewMatchRepository(newTestStore())
	ctx := context.Background()
	donorID := uuid.New()

	first := &entity.Match{ID: uuid.New(), DonorID: donorID, PatientID: uuid.New(), CreatedAt: time.Now()}
	second := &entity.Match{ID: uuid.New(), DonorID: donorID, PatientID: uuid.New(), CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))
	require.ErrorIs(t, repo.Create(ctx, second), repository.ErrDuplicateMatch)

	found, err := repo.FindByDonorID(ctx, donorID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByPatientID(ctx, first.PatientID)
	require.ErrorIs(t, err, repository.ErrMatchNotFound)
}
