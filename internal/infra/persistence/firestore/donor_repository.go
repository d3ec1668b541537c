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

// donorRepository implements the repository.DonorRepository interface.
type donorRepository struct {
	store *docStore
}

// NewDonorRepository is the constructor for donorRepository.
func NewDonorRepository(client *firestore.Client) repository.DonorRepository {
	return &donorRepository{store: newDocStore(client)}
}

func (repo *donorRepository) ref(id uuid.UUID) *firestore.DocumentRef {
	return repo.store.collection(donorsCollection).Doc(id.String())
}

// Create persists a new donor.
func (repo *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	if err := repo.store.create(ctx, repo.ref(donor.ID), fromDonorDomain(donor)); err != nil {
		return domainerrors.NewStoreError(err, "failed to create donor")
	}

	return nil
}

// FindByID retrieves a donor by its unique ID.
func (repo *donorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	doc, err := repo.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDonorDomain(id, doc), nil
}

// List retrieves every donor ordered by creation time, then ID.
func (repo *donorRepository) List(ctx context.Context) ([]*entity.Donor, error) {
	query := repo.store.collection(donorsCollection).
		OrderBy("created_at", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	snaps, err := repo.store.documents(ctx, query)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list donors")
	}

	donors := make([]*entity.Donor, 0, len(snaps))
	for _, snap := range snaps {
		id, doc, err := decodeDonor(snap)
		if err != nil {
			return nil, err
		}
		donors = append(donors, toDonorDomain(id, doc))
	}

	return donors, nil
}

// Update writes every field except is_available and created_at.
func (repo *donorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &donorRepository{store: tx}
		if _, err := txRepo.load(ctx, donor.ID); err != nil {
			return err
		}

		doc := fromDonorDomain(donor)
		updates := []firestore.Update{
			{Path: "name", Value: doc.Name},
			{Path: "blood_group", Value: doc.BloodGroup},
			{Path: "rh_factor", Value: doc.RhFactor},
			{Path: "last_donation_date", Value: doc.LastDonationDate},
			{Path: "weight_kg", Value: doc.WeightKg},
			{Path: "hemoglobin_gdl", Value: doc.HemoglobinGdl},
			{Path: "city", Value: doc.City},
			{Path: "contact", Value: doc.Contact},
			{Path: "ongoing_medications", Value: doc.OngoingMedications},
			{Path: "chronic_diseases", Value: doc.ChronicDiseases},
			{Path: "allergies", Value: doc.Allergies},
			{Path: "eligible", Value: doc.Eligible},
			{Path: "updated_at", Value: doc.UpdatedAt},
		}
		if err := tx.update(ctx, txRepo.ref(donor.ID), updates); err != nil {
			return domainerrors.NewStoreError(err, "failed to update donor")
		}

		return nil
	})
}

// Delete removes a donor by its ID.
func (repo *donorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &donorRepository{store: tx}
		if _, err := txRepo.load(ctx, id); err != nil {
			return err
		}
		if err := tx.delete(ctx, txRepo.ref(id)); err != nil {
			return domainerrors.NewStoreError(err, "failed to delete donor")
		}

		return nil
	})
}

// Reserve flips is_available from true to false. Firestore aborts and retries the
// transaction when a concurrent commit changed the donor after it was read.
func (repo *donorRepository) Reserve(ctx context.Context, id uuid.UUID) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &donorRepository{store: tx}
		doc, err := txRepo.load(ctx, id)
		if err != nil {
			return err
		}
		if !doc.IsAvailable {
			return repository.ErrDonorUnavailable
		}

		return txRepo.setAvailable(ctx, id, false)
	})
}

// Restore sets is_available to true.
func (repo *donorRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &donorRepository{store: tx}
		if _, err := txRepo.load(ctx, id); err != nil {
			return err
		}

		return txRepo.setAvailable(ctx, id, true)
	})
}

func (repo *donorRepository) setAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	updates := []firestore.Update{
		{Path: "is_available", Value: available},
		{Path: "updated_at", Value: time.Now()},
	}
	if err := repo.store.update(ctx, repo.ref(id), updates); err != nil {
		return domainerrors.NewStoreError(err, "failed to update donor availability")
	}

	return nil
}

func (repo *donorRepository) load(ctx context.Context, id uuid.UUID) (*donorDoc, error) {
	snap, err := repo.store.get(ctx, repo.ref(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find donor by ID")
	}

	_, doc, err := decodeDonor(snap)

	return doc, err
}

func decodeDonor(snap *firestore.DocumentSnapshot) (uuid.UUID, *donorDoc, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return uuid.Nil, nil, domainerrors.NewStoreError(err, "donor document has a malformed ID")
	}

	var doc donorDoc
	if err := snap.DataTo(&doc); err != nil {
		return uuid.Nil, nil, domainerrors.NewStoreError(err, "failed to decode donor")
	}

	return id, &doc, nil
}

