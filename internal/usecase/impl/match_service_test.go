package impl

import (
	"context"
	"testing"

	"bloodbank/internal/domain/constants"
	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/matching"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/domain/service"
	mockRepo "bloodbank/internal/mocks/repository"
	mockSvc "bloodbank/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// matchServiceFixtures holds all test dependencies for match service tests.
type matchServiceFixtures struct {
	service     *matchService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	donorRepo   *mockRepo.MockDonorRepository
	patientRepo *mockRepo.MockPatientRepository
	matchRepo   *mockRepo.MockMatchRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	fx := matchServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		donorRepo:   mockRepo.NewMockDonorRepository(t),
		patientRepo: mockRepo.NewMockPatientRepository(t),
		matchRepo:   mockRepo.NewMockMatchRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewMatchService(MatchServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*matchService)
	svc.now = fixedClock(testNow)
	fx.service = svc

	return fx
}

// expectTransaction makes Execute run the callback against the mock repositories.
func (fx matchServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().DonorRepo().Return(fx.donorRepo).Maybe()
	fx.factory.EXPECT().PatientRepo().Return(fx.patientRepo).Maybe()
	fx.factory.EXPECT().MatchRepo().Return(fx.matchRepo).Maybe()
}

func TestMatchService_ConfirmMatch_Success(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	patient := waitingPatient(entity.BloodGroupAB, entity.RhPositive, entity.CityKarachi)

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	fx.matchRepo.EXPECT().FindByDonorID(ctx, donor.ID).Return(nil, repository.ErrMatchNotFound)
	fx.matchRepo.EXPECT().FindByPatientID(ctx, patient.ID).Return(nil, repository.ErrMatchNotFound)
	fx.donorRepo.EXPECT().Reserve(ctx, donor.ID).Return(nil)
	fx.patientRepo.EXPECT().MarkSatisfied(ctx, patient.ID).Return(nil)
	fx.matchRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Match")).Return(nil)
	fx.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.MatchedBy(func(e *service.MatchEvent) bool {
			return e.Type == constants.EventMatchConfirmed && e.DonorID == donor.ID.String()
		})).
		Return(nil)

	match, err := fx.service.ConfirmMatch(ctx, patient.ID, donor.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, match.PatientID)
	assert.Equal(t, donor.ID, match.DonorID)
	assert.Equal(t, "O-", match.DonorBloodLabel)
	assert.Equal(t, "AB+", match.PatientBloodLabel)
	assert.Equal(t, entity.CityKarachi, match.City)
	assert.Equal(t, testNow, match.CreatedAt)
}

func TestMatchService_ConfirmMatch_DonorNotFound(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donorID).Return(nil, repository.ErrDonorNotFound)

	match, err := fx.service.ConfirmMatch(ctx, uuid.New(), donorID)
	require.Error(t, err)
	assert.Nil(t, match)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMatchService_ConfirmMatch_PatientNotFound(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	patientID := uuid.New()

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
	fx.patientRepo.EXPECT().FindByID(ctx, patientID).Return(nil, repository.ErrPatientNotFound)

	_, err := fx.service.ConfirmMatch(ctx, patientID, donor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMatchService_ConfirmMatch_PreconditionsCheckedBeforeWrites(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Donor, *entity.Patient)
		reason error
	}{
		{
			name:   "donor reserved",
			mutate: func(d *entity.Donor, _ *entity.Patient) { d.IsAvailable = false },
			reason: matching.ErrDonorUnavailable,
		},
		{
			name:   "patient satisfied",
			mutate: func(_ *entity.Donor, p *entity.Patient) { p.NeedsMatch = false },
			reason: matching.ErrPatientSatisfied,
		},
		{
			name:   "donated too recently",
			mutate: func(d *entity.Donor, _ *entity.Patient) { d.LastDonationDate = daysBefore(testNow, 30) },
			reason: matching.ErrDonorIneligible,
		},
		{
			name:   "different city",
			mutate: func(_ *entity.Donor, p *entity.Patient) { p.City = entity.CityLahore },
			reason: matching.ErrCityMismatch,
		},
		{
			name:   "incompatible blood",
			mutate: func(d *entity.Donor, _ *entity.Patient) { d.Blood.Group = entity.BloodGroupAB },
			reason: matching.ErrBloodIncompatible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMatchService(t)
			ctx := context.Background()
			donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
			patient := waitingPatient(entity.BloodGroupA, entity.RhNegative, entity.CityKarachi)
			tt.mutate(donor, patient)

			fx.expectTransaction(ctx)
			fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
			fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)

			_, err := fx.service.ConfirmMatch(ctx, patient.ID, donor.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
			assert.ErrorIs(t, err, tt.reason)
		})
	}
}

func TestMatchService_ConfirmMatch_StaleStoredEligibilityIgnored(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	donor.Eligible = entity.EligibilityYes
	donor.HemoglobinGdl = 11
	patient := waitingPatient(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)

	_, err := fx.service.ConfirmMatch(ctx, patient.ID, donor.ID)
	assert.ErrorIs(t, err, matching.ErrDonorIneligible)
}

func TestMatchService_ConfirmMatch_ExistingLiveMatch(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	patient := waitingPatient(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	fx.matchRepo.EXPECT().FindByDonorID(ctx, donor.ID).Return(&entity.Match{ID: uuid.New(), DonorID: donor.ID}, nil)

	_, err := fx.service.ConfirmMatch(ctx, patient.ID, donor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
	assert.ErrorIs(t, err, matching.ErrDonorMatched)
}

func TestMatchService_ConfirmMatch_LostReservationRace(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	patient := waitingPatient(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	fx.matchRepo.EXPECT().FindByDonorID(ctx, donor.ID).Return(nil, repository.ErrMatchNotFound)
	fx.matchRepo.EXPECT().FindByPatientID(ctx, patient.ID).Return(nil, repository.ErrMatchNotFound)
	fx.donorRepo.EXPECT().Reserve(ctx, donor.ID).Return(repository.ErrDonorUnavailable)

	_, err := fx.service.ConfirmMatch(ctx, patient.ID, donor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
	assert.ErrorIs(t, err, matching.ErrDonorUnavailable)
}

func TestMatchService_ConfirmMatch_StoreFailure(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donorID).Return(nil, errors.New("connection reset"))

	_, err := fx.service.ConfirmMatch(ctx, uuid.New(), donorID)
	assert.ErrorIs(t, err, domainerrors.ErrIOFailure)
}

func TestMatchService_ConfirmMatch_PublishFailureKeepsMatch(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupA, entity.RhPositive, entity.CityQuetta)
	patient := waitingPatient(entity.BloodGroupA, entity.RhPositive, entity.CityQuetta)

	fx.expectTransaction(ctx)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	fx.matchRepo.EXPECT().FindByDonorID(ctx, donor.ID).Return(nil, repository.ErrMatchNotFound)
	fx.matchRepo.EXPECT().FindByPatientID(ctx, patient.ID).Return(nil, repository.ErrMatchNotFound)
	fx.donorRepo.EXPECT().Reserve(ctx, donor.ID).Return(nil)
	fx.patientRepo.EXPECT().MarkSatisfied(ctx, patient.ID).Return(nil)
	fx.matchRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Match")).Return(nil)
	fx.publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	match, err := fx.service.ConfirmMatch(ctx, patient.ID, donor.ID)
	require.NoError(t, err)
	assert.NotNil(t, match)
}

func TestMatchService_ReleaseMatch_Success(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	patient := waitingPatient(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	match := entity.NewMatch(patient, donor, testNow)

	fx.expectTransaction(ctx)
	fx.matchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(donor, nil)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	fx.donorRepo.EXPECT().Restore(ctx, donor.ID).Return(nil)
	fx.patientRepo.EXPECT().MarkNeedsMatch(ctx, patient.ID).Return(nil)
	fx.matchRepo.EXPECT().Delete(ctx, match.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.MatchedBy(func(e *service.MatchEvent) bool {
			return e.Type == constants.EventMatchReleased && e.MatchID == match.ID.String()
		})).
		Return(nil)

	require.NoError(t, fx.service.ReleaseMatch(ctx, match.ID))
}

func TestMatchService_ReleaseMatch_NotFoundWritesNothing(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	matchID := uuid.New()

	fx.expectTransaction(ctx)
	fx.matchRepo.EXPECT().FindByID(ctx, matchID).Return(nil, repository.ErrMatchNotFound)

	err := fx.service.ReleaseMatch(ctx, matchID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMatchService_ReleaseMatch_SkipsDeletedDonor(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	donor := eligibleDonor(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	patient := waitingPatient(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	match := entity.NewMatch(patient, donor, testNow)

	fx.expectTransaction(ctx)
	fx.matchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
	fx.donorRepo.EXPECT().FindByID(ctx, donor.ID).Return(nil, repository.ErrDonorNotFound)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	fx.patientRepo.EXPECT().MarkNeedsMatch(ctx, patient.ID).Return(nil)
	fx.matchRepo.EXPECT().Delete(ctx, match.ID).Return(nil)
	fx.publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	require.NoError(t, fx.service.ReleaseMatch(ctx, match.ID))
}

func TestMatchService_Candidates_SatisfiedPatientHasNone(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	patient := waitingPatient(entity.BloodGroupO, entity.RhNegative, entity.CityKarachi)
	patient.NeedsMatch = false

	fx.expectTransaction(ctx)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)

	candidates, err := fx.service.Candidates(ctx, patient.ID)
	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestMatchService_Candidates_FiltersPool(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	patient := waitingPatient(entity.BloodGroupB, entity.RhPositive, entity.CityMultan)
	good := eligibleDonor(entity.BloodGroupO, entity.RhPositive, entity.CityMultan)
	reserved := eligibleDonor(entity.BloodGroupB, entity.RhNegative, entity.CityMultan)
	elsewhere := eligibleDonor(entity.BloodGroupB, entity.RhPositive, entity.CityLahore)
	live := entity.NewMatch(waitingPatient(entity.BloodGroupB, entity.RhPositive, entity.CityMultan), reserved, testNow)

	fx.expectTransaction(ctx)
	fx.patientRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	fx.donorRepo.EXPECT().List(ctx).Return([]*entity.Donor{good, reserved, elsewhere}, nil)
	fx.matchRepo.EXPECT().List(ctx).Return([]*entity.Match{live}, nil)

	candidates, err := fx.service.Candidates(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, good.ID, candidates[0].ID)
}

func TestMatchService_Board_SkipsSatisfiedPatients(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	waiting := waitingPatient(entity.BloodGroupA, entity.RhPositive, entity.CityPeshawar)
	satisfied := waitingPatient(entity.BloodGroupA, entity.RhPositive, entity.CityPeshawar)
	satisfied.NeedsMatch = false
	donor := eligibleDonor(entity.BloodGroupA, entity.RhNegative, entity.CityPeshawar)

	fx.expectTransaction(ctx)
	fx.patientRepo.EXPECT().List(ctx).Return([]*entity.Patient{waiting, satisfied}, nil)
	fx.donorRepo.EXPECT().List(ctx).Return([]*entity.Donor{donor}, nil)
	fx.matchRepo.EXPECT().List(ctx).Return([]*entity.Match{}, nil)

	board, err := fx.service.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, waiting.ID, board[0].Patient.ID)
	require.Len(t, board[0].Candidates, 1)
	assert.Equal(t, donor.ID, board[0].Candidates[0].ID)
}

func TestMatchService_GetMatch_NotFound(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	matchID := uuid.New()

	fx.expectTransaction(ctx)
	fx.matchRepo.EXPECT().FindByID(ctx, matchID).Return(nil, repository.ErrMatchNotFound)

	_, err := fx.service.GetMatch(ctx, matchID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
