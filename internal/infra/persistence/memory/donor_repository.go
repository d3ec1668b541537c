package memory

import (
	"context"
	"slices"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/domain/repository"

	"github.com/google/uuid"
)

type donorRepository struct {
	store *Store
	tx    *tables
}

// NewDonorRepository returns a donor repository operating on the live tables.
func NewDonorRepository(store *Store) repository.DonorRepository {
	return &donorRepository{store: store}
}

func (r *donorRepository) Create(_ context.Context, donor *entity.Donor) error {
	return r.store.access(r.tx, func(t *tables) error {
		if _, exists := t.donors[donor.ID]; exists {
			return errDuplicateKey
		}
		t.donors[donor.ID] = cloneDonor(donor)

		return nil
	})
}

func (r *donorRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Donor, error) {
	var found *entity.Donor
	err := r.store.access(r.tx, func(t *tables) error {
		donor, ok := t.donors[id]
		if !ok {
			return repository.ErrDonorNotFound
		}
		found = cloneDonor(donor)

		return nil
	})

	return found, err
}

func (r *donorRepository) List(_ context.Context) ([]*entity.Donor, error) {
	var donors []*entity.Donor
	err := r.store.access(r.tx, func(t *tables) error {
		donors = make([]*entity.Donor, 0, len(t.donors))
		for _, donor := range t.donors {
			donors = append(donors, cloneDonor(donor))
		}

		return nil
	})
	slices.SortFunc(donors, func(a, b *entity.Donor) int {
		return compareRecords(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})

	return donors, err
}

func (r *donorRepository) Update(_ context.Context, donor *entity.Donor) error {
	return r.store.access(r.tx, func(t *tables) error {
		existing, ok := t.donors[donor.ID]
		if !ok {
			return repository.ErrDonorNotFound
		}
		updated := cloneDonor(donor)
		updated.IsAvailable = existing.IsAvailable
		updated.CreatedAt = existing.CreatedAt
		t.donors[donor.ID] = updated

		return nil
	})
}

func (r *donorRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.access(r.tx, func(t *tables) error {
		if _, ok := t.donors[id]; !ok {
			return repository.ErrDonorNotFound
		}
		delete(t.donors, id)

		return nil
	})
}

func (r *donorRepository) Reserve(_ context.Context, id uuid.UUID) error {
	return r.store.access(r.tx, func(t *tables) error {
		donor, ok := t.donors[id]
		if !ok {
			return repository.ErrDonorNotFound
		}
		if !donor.IsAvailable {
			return repository.ErrDonorUnavailable
		}
		donor.IsAvailable = false

		return nil
	})
}

func (r *donorRepository) Restore(_ context.Context, id uuid.UUID) error {
	return r.store.access(r.tx, func(t *tables) error {
		donor, ok := t.donors[id]
		if !ok {
			return repository.ErrDonorNotFound
		}
		donor.IsAvailable = true

		return nil
	})
}
