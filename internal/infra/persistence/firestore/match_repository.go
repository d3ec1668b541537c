package firestore

import (
	"context"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/errors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// matchRepository implements the repository.MatchRepository interface.
// Uniqueness of donor and patient per live match is carried by the transaction that
// reserves the donor and satisfies the patient; both documents are written by every
// confirmation, so two confirmations on either side conflict at commit.
type matchRepository struct {
	store *docStore
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(client *firestore.Client) repository.MatchRepository {
	return &matchRepository{store: newDocStore(client)}
}

func (repo *matchRepository) ref(id uuid.UUID) *firestore.DocumentRef {
	return repo.store.collection(matchesCollection).Doc(id.String())
}

// Create persists a new match.
func (repo *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	if err := repo.store.create(ctx, repo.ref(match.ID), fromMatchDomain(match)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Wrapf(repository.ErrDuplicateMatch, "match %s already exists", match.ID)
		}

		return domainerrors.NewStoreError(err, "failed to create match")
	}

	return nil
}

// FindByID retrieves a live match by its unique ID.
func (repo *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	snap, err := repo.store.get(ctx, repo.ref(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find match by ID")
	}

	return decodeMatch(snap)
}

// FindByDonorID retrieves the live match reserving a donor.
func (repo *matchRepository) FindByDonorID(ctx context.Context, donorID uuid.UUID) (*entity.Match, error) {
	return repo.findOne(ctx, "donor_id", donorID)
}

// FindByPatientID retrieves the live match satisfying a patient.
func (repo *matchRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) (*entity.Match, error) {
	return repo.findOne(ctx, "patient_id", patientID)
}

// List retrieves every live match ordered by creation time, then ID.
func (repo *matchRepository) List(ctx context.Context) ([]*entity.Match, error) {
	query := repo.store.collection(matchesCollection).
		OrderBy("created_at", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	snaps, err := repo.store.documents(ctx, query)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list matches")
	}

	matches := make([]*entity.Match, 0, len(snaps))
	for _, snap := range snaps {
		match, err := decodeMatch(snap)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// Delete removes a match by its ID.
func (repo *matchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.atomically(ctx, func(tx *docStore) error {
		txRepo := &matchRepository{store: tx}
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if err := tx.delete(ctx, txRepo.ref(id)); err != nil {
			return domainerrors.NewStoreError(err, "failed to delete match")
		}

		return nil
	})
}

func (repo *matchRepository) findOne(ctx context.Context, field string, id uuid.UUID) (*entity.Match, error) {
	query := repo.store.collection(matchesCollection).
		Where(field, "==", id.String()).
		Limit(1)

	snaps, err := repo.store.documents(ctx, query)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to find match by "+field)
	}
	if len(snaps) == 0 {
		return nil, repository.ErrMatchNotFound
	}

	return decodeMatch(snaps[0])
}

func decodeMatch(snap *firestore.DocumentSnapshot) (*entity.Match, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "match document has a malformed ID")
	}

	var doc matchDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to decode match")
	}

	match, err := toMatchDomain(id, &doc)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "match document has a malformed reference")
	}

	return match, nil
}
