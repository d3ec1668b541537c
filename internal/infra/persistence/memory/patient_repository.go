package memory

import (
	"context"
	"slices"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/domain/repository"

	"github.com/google/uuid"
)

type patientRepository struct {
	store *Store
	tx    *tables
}

// NewPatientRepository returns a patient repository operating on the live tables.
func NewPatientRepository(store *Store) repository.PatientRepository {
	return &patientRepository{store: store}
}

func (r *patientRepository) Create(_ context.Context, patient *entity.Patient) error {
	return r.store.access(r.tx, func(t *tables) error {
		if _, exists := t.patients[patient.ID]; exists {
			return errDuplicateKey
		}
		t.patients[patient.ID] = clonePatient(patient)

		return nil
	})
}

func (r *patientRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	var found *entity.Patient
	err := r.store.access(r.tx, func(t *tables) error {
		patient, ok := t.patients[id]
		if !ok {
			return repository.ErrPatientNotFound
		}
		found = clonePatient(patient)

		return nil
	})

	return found, err
}

func (r *patientRepository) List(_ context.Context) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	err := r.store.access(r.tx, func(t *tables) error {
		patients = make([]*entity.Patient, 0, len(t.patients))
		for _, patient := range t.patients {
			patients = append(patients, clonePatient(patient))
		}

		return nil
	})
	slices.SortFunc(patients, func(a, b *entity.Patient) int {
		return compareRecords(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})

	return patients, err
}

func (r *patientRepository) Update(_ context.Context, patient *entity.Patient) error {
	return r.store.access(r.tx, func(t *tables) error {
		existing, ok := t.patients[patient.ID]
		if !ok {
			return repository.ErrPatientNotFound
		}
		updated := clonePatient(patient)
		updated.NeedsMatch = existing.NeedsMatch
		updated.CreatedAt = existing.CreatedAt
		t.patients[patient.ID] = updated

		return nil
	})
}

func (r *patientRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.access(r.tx, func(t *tables) error {
		if _, ok := t.patients[id]; !ok {
			return repository.ErrPatientNotFound
		}
		delete(t.patients, id)

		return nil
	})
}

func (r *patientRepository) MarkSatisfied(_ context.Context, id uuid.UUID) error {
	return r.store.access(r.tx, func(t *tables) error {
		patient, ok := t.patients[id]
		if !ok {
			return repository.ErrPatientNotFound
		}
		if !patient.NeedsMatch {
			return repository.ErrPatientAlreadyMatched
		}
		patient.NeedsMatch = false

		return nil
	})
}

func (r *patientRepository) MarkNeedsMatch(_ context.Context, id uuid.UUID) error {
	return r.store.access(r.tx, func(t *tables) error {
		patient, ok := t.patients[id]
		if !ok {
			return repository.ErrPatientNotFound
		}
		patient.NeedsMatch = true

		return nil
	})
}
