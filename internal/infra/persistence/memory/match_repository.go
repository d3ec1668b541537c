package memory

import (
	"context"
	"slices"

	"bloodbank/internal/domain/entity"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/errors"

	"github.com/google/uuid"
)

var errDuplicateKey = errors.New("record with this id already exists")

type matchRepository struct {
	store *Store
	tx    *tables
}

// NewMatchRepository returns a match repository operating on the live tables.
func NewMatchRepository(store *Store) repository.MatchRepository {
	return &matchRepository{store: store}
}

// Create enforces that a donor and a patient each appear in at most one live match.
func (r *matchRepository) Create(_ context.Context, match *entity.Match) error {
	return r.store.access(r.tx, func(t *tables) error {
		if _, exists := t.matches[match.ID]; exists {
			return errDuplicateKey
		}
		for _, live := range t.matches {
			if live.DonorID == match.DonorID || live.PatientID == match.PatientID {
				return repository.ErrDuplicateMatch
			}
		}
		t.matches[match.ID] = cloneMatch(match)

		return nil
	})
}

func (r *matchRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Match, error) {
	return r.findFirst(func(m *entity.Match) bool { return m.ID == id })
}

func (r *matchRepository) FindByDonorID(_ context.Context, donorID uuid.UUID) (*entity.Match, error) {
	return r.findFirst(func(m *entity.Match) bool { return m.DonorID == donorID })
}

func (r *matchRepository) FindByPatientID(_ context.Context, patientID uuid.UUID) (*entity.Match, error) {
	return r.findFirst(func(m *entity.Match) bool { return m.PatientID == patientID })
}

func (r *matchRepository) findFirst(pred func(*entity.Match) bool) (*entity.Match, error) {
	var found *entity.Match
	err := r.store.access(r.tx, func(t *tables) error {
		for _, m := range t.matches {
			if pred(m) {
				found = cloneMatch(m)

				return nil
			}
		}

		return repository.ErrMatchNotFound
	})

	return found, err
}

func (r *matchRepository) List(_ context.Context) ([]*entity.Match, error) {
	var matches []*entity.Match
	err := r.store.access(r.tx, func(t *tables) error {
		matches = make([]*entity.Match, 0, len(t.matches))
		for _, m := range t.matches {
			matches = append(matches, cloneMatch(m))
		}

		return nil
	})
	slices.SortFunc(matches, func(a, b *entity.Match) int {
		return compareRecords(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})

	return matches, err
}

func (r *matchRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.access(r.tx, func(t *tables) error {
		if _, ok := t.matches[id]; !ok {
			return repository.ErrMatchNotFound
		}
		delete(t.matches, id)

		return nil
	})
}
