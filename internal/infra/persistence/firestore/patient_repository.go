package firestore

import (
	"context"
	"time"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

// patientRepository implements the repository.PatientRepository interface.
type patientRepository struct {
	store *docStore
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(client *firestore.Client) repository.PatientRepository {
	return &patientRepository{store: newDocStore(client)}
}

func (repo *patientRepository) ref(id uuid.UUID) *firestore.DocumentRef {
	return repo.store.collection(patientsCollection).Doc(id.String())
}

// Create persists a new patient.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if err := repo.store.create(ctx, repo.ref(patient.ID), fromPatientDomain(patient)); err != nil {
		return domainerrors.NewStoreError(err, "failed to create patient")
	}

	return nil
}

// FindByID retrieves a patient by its unique ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	doc, err := repo.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return toPatientDomain(id, doc), nil
}

// List retrieves every patient ordered by creation time, then ID.
func (repo *patientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	query := repo.store.collection(patientsCollection).
		OrderBy("created_at", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	snaps, err := repo.store.documents(ctx, query)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(snaps))
	for _, snap := range snaps {
		id, doc, err := decodePatient(snap)
		if err != nil {
			return nil, err
		}
		patients = append(patients, toPatientDomain(id, doc))
	}

	return patients, nil
}

// Update writes every field except needs_match and created_at.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &patientRepository{store: tx}
		if _, err := txRepo.load(ctx, patient.ID); err != nil {
			return err
		}

		doc := fromPatientDomain(patient)
		updates := []firestore.Update{
			{Path: "name", Value: doc.Name},
			{Path: "age", Value: doc.Age},
			{Path: "blood_group", Value: doc.BloodGroup},
			{Path: "rh_factor", Value: doc.RhFactor},
			{Path: "city", Value: doc.City},
			{Path: "contact", Value: doc.Contact},
			{Path: "diagnosis", Value: doc.Diagnosis},
			{Path: "treatment_plan", Value: doc.TreatmentPlan},
			{Path: "admission_date", Value: doc.AdmissionDate},
			{Path: "updated_at", Value: doc.UpdatedAt},
		}
		if err := tx.update(ctx, txRepo.ref(patient.ID), updates); err != nil {
			return domainerrors.NewStoreError(err, "failed to update patient")
		}

		return nil
	})
}

// Delete removes a patient by its ID.
func (repo *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &patientRepository{store: tx}
		if _, err := txRepo.load(ctx, id); err != nil {
			return err
		}
		if err := tx.delete(ctx, txRepo.ref(id)); err != nil {
			return domainerrors.NewStoreError(err, "failed to delete patient")
		}

		return nil
	})
}

// MarkSatisfied flips needs_match from true to false.
func (repo *patientRepository) MarkSatisfied(ctx context.Context, id uuid.UUID) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &patientRepository{store: tx}
		doc, err := txRepo.load(ctx, id)
		if err != nil {
			return err
		}
		if !doc.NeedsMatch {
			return repository.ErrPatientAlreadyMatched
		}

		return txRepo.setNeedsMatch(ctx, id, false)
	})
}

// MarkNeedsMatch sets needs_match to true.
func (repo *patientRepository) MarkNeedsMatch(ctx context.Context, id uuid.UUID) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &patientRepository{store: tx}
		if _, err := txRepo.load(ctx, id); err != nil {
			return err
		}

		return txRepo.setNeedsMatch(ctx, id, true)
	})
}

func (repo *patientRepository) setNeedsMatch(ctx context.Context, id uuid.UUID, needsMatch bool) error {
	updates := []firestore.Update{
		{Path: "needs_match", Value: needsMatch},
		{Path: "updated_at", Value: time.Now()},
	}
	if err := repo.store.update(ctx, repo.ref(id), updates); err != nil {
		return domainerrors.NewStoreError(err, "failed to update patient match state")
	}

	return nil
}

func (repo *patientRepository) load(ctx context.Context, id uuid.UUID) (*patientDoc, error) {
	snap, err := repo.store.get(ctx, repo.ref(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find patient by ID")
	}

	_, doc, err := decodePatient(snap)

	return doc, err
}

func decodePatient(snap *firestore.DocumentSnapshot) (uuid.UUID, *patientDoc, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return uuid.Nil, nil, domainerrors.NewStoreError(err, "patient document has a malformed ID")
	}

	var doc patientDoc
	if err := snap.DataTo(&doc); err != nil {
		return uuid.Nil, nil, domainerrors.NewStoreError(err, "failed to decode patient")
	}

	return id, &doc, nil
}
