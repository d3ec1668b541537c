package seed

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/infra/persistence/memory"
	mockusecase "bloodbank/internal/mocks/usecase"
	"bloodbank/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
donors:
  - name: Ahmed
    blood: O-
    lastDonationDate: "2020-01-15"
    weightKg: "72"
    hemoglobinGdl: "14.1"
    city: Karachi
    contact: 0300-1111111
  - name: Low Hemoglobin
    blood: A+
    weightKg: "58"
    hemoglobinGdl: "11.2"
    city: Lahore
    contact: 0300-2222222
  - name: Mystery
    blood: Z+
    weightKg: "70"
    hemoglobinGdl: "14"
    city: Lahore
    contact: 0300-3333333
patients:
  - name: Fatima
    age: 9
    blood: AB+
    city: Karachi
    contact: 021-1234567
    diagnosis: thalassemia major
    admissionDate: "2025-02-01"
  - name: Nowhere
    age: 30
    blood: B-
    city: Atlantis
    contact: "000"
`

func newStore(t *testing.T) *memory.Store {
	t.Helper()

	return memory.NewStore(slog.New(slog.DiscardHandler))
}

func TestLoader_LoadFromFileBucket(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed.yaml"), []byte(seedYAML), 0o600))

	store := newStore(t)
	logger := slog.New(slog.DiscardHandler)
	registry := impl.NewRegistryService(impl.RegistryServiceParams{
		TxManager:   store,
		DonorRepo:   memory.NewDonorRepository(store),
		PatientRepo: memory.NewPatientRepository(store),
		Logger:      logger,
	})

	bucketURL := (&url.URL{Scheme: "file", Path: dir}).String()
	result, err := NewLoader(registry, logger).Load(context.Background(), bucketURL, "seed.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2, result.DonorsRegistered)
	assert.Equal(t, 1, result.PatientsRegistered)
	assert.Len(t, result.Rejected, 2)

	donors, err := registry.ListDonors(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 2)
	byName := map[string]*entity.Donor{donors[0].Name: donors[0], donors[1].Name: donors[1]}
	assert.Equal(t, entity.EligibilityYes, byName["Ahmed"].Eligible)
	assert.Equal(t, entity.EligibilityNo, byName["Low Hemoglobin"].Eligible)
	assert.True(t, byName["Ahmed"].IsAvailable)

	patients, err := registry.ListPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "AB+", patients[0].Blood.Label())
	assert.True(t, patients[0].NeedsMatch)
	require.NotNil(t, patients[0].AdmissionDate)
}

func TestLoader_MissingObject(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	bucketURL := (&url.URL{Scheme: "file", Path: t.TempDir()}).String()

	_, err := NewLoader(mockusecase.NewMockRegistryUsecase(t), logger).Load(context.Background(), bucketURL, "absent.yaml")
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestLoader_StopsOnStoreFailure(t *testing.T) {
	registry := mockusecase.NewMockRegistryUsecase(t)
	registry.EXPECT().RegisterDonor(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	file, err := Parse([]byte(seedYAML))
	require.NoError(t, err)

	result, err := NewLoader(registry, slog.New(slog.DiscardHandler)).Apply(context.Background(), file)
	require.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, result.DonorsRegistered)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("donors: [unterminated"))
	assert.Error(t, err)
}
