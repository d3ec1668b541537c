// Package memory provides an in-process record store. Transactions are serialized by a single
// mutex and run against a copy of the tables, so a failed transaction leaves no trace.
package memory

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"time"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"

	"github.com/google/uuid"
)

type tables struct {
	donors   map[uuid.UUID]*entity.Donor
	patients map[uuid.UUID]*entity.Patient
	matches  map[uuid.UUID]*entity.Match
}

func newTables() *tables {
	return &tables{
		donors:   make(map[uuid.UUID]*entity.Donor),
		patients: make(map[uuid.UUID]*entity.Patient),
		matches:  make(map[uuid.UUID]*entity.Match),
	}
}

func (t *tables) clone() *tables {
	c := &tables{
		donors:   make(map[uuid.UUID]*entity.Donor, len(t.donors)),
		patients: make(map[uuid.UUID]*entity.Patient, len(t.patients)),
		matches:  make(map[uuid.UUID]*entity.Match, len(t.matches)),
	}
	for id, d := range t.donors {
		c.donors[id] = cloneDonor(d)
	}
	for id, p := range t.patients {
		c.patients[id] = clonePatient(p)
	}
	for id, m := range t.matches {
		c.matches[id] = cloneMatch(m)
	}

	return c
}

// Store holds every table behind one lock.
type Store struct {
	mu     sync.Mutex
	data   *tables
	logger *slog.Logger
}

// NewStore returns an empty store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		data:   newTables(),
		logger: logger,
	}
}

// Execute runs fn against a private copy of the tables while holding the store lock.
// The copy replaces the live tables only when fn returns nil.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to begin transaction")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.clone()
	if err := fn(&repoFactory{store: s, tx: working}); err != nil {
		s.logger.Debug("Rolling back memory transaction", slog.Any("error", err))

		return err
	}
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(err, "failed to commit transaction")
	}
	s.data = working

	return nil
}

// access runs fn on the transaction tables when bound to one, otherwise on the live tables
// under the store lock.
func (s *Store) access(tx *tables, fn func(*tables) error) error {
	if tx != nil {
		return fn(tx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

type repoFactory struct {
	store *Store
	tx    *tables
}

func (f *repoFactory) DonorRepo() repository.DonorRepository {
	return &donorRepository{store: f.store, tx: f.tx}
}

func (f *repoFactory) PatientRepo() repository.PatientRepository {
	return &patientRepository{store: f.store, tx: f.tx}
}

func (f *repoFactory) MatchRepo() repository.MatchRepository {
	return &matchRepository{store: f.store, tx: f.tx}
}

// compareRecords orders by creation time, then ID.
func compareRecords(aCreated time.Time, aID uuid.UUID, bCreated time.Time, bID uuid.UUID) int {
	if c := aCreated.Compare(bCreated); c != 0 {
		return c
	}

	return bytes.Compare(aID[:], bID[:])
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

func cloneDonor(d *entity.Donor) *entity.Donor {
	c := *d
	c.LastDonationDate = cloneTime(d.LastDonationDate)

	return &c
}

func clonePatient(p *entity.Patient) *entity.Patient {
	c := *p
	c.AdmissionDate = cloneTime(p.AdmissionDate)

	return &c
}

func cloneMatch(m *entity.Match) *entity.Match {
	c := *m

	return &c
}
