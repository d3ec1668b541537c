package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
)

type snapshotRead struct {
	snap *firestore.DocumentSnapshot
	err  error
}

// docStore routes document access either straight to the client or through a transaction.
// Inside a transaction every document is read at most once; later lookups of the same
// path reuse the first snapshot so compare-and-set writes issue no read after a write.
type docStore struct {
	client *firestore.Client
	tx     *firestore.Transaction
	reads  map[string]snapshotRead
}

func newDocStore(client *firestore.Client) *docStore {
	return &docStore{client: client}
}

func newTxStore(client *firestore.Client, tx *firestore.Transaction) *docStore {
	return &docStore{
		client: client,
		tx:     tx,
		reads:  make(map[string]snapshotRead),
	}
}

func (s *docStore) collection(name string) *firestore.CollectionRef {
	return s.client.Collection(name)
}

// atomically runs fn in the current transaction, or in a fresh one when s is not bound.
func (s *docStore) atomically(ctx context.Context, fn func(tx *docStore) error) error {
	if s.tx != nil {
		return fn(s)
	}

	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(newTxStore(s.client, tx))
	})

	return commitFailure(err)
}

func (s *docStore) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if s.tx == nil {
		return ref.Get(ctx)
	}

	if read, ok := s.reads[ref.Path]; ok {
		return read.snap, read.err
	}

	snap, err := s.tx.Get(ref)
	s.reads[ref.Path] = snapshotRead{snap: snap, err: err}

	return snap, err
}

func (s *docStore) documents(ctx context.Context, query firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	if s.tx == nil {
		return query.Documents(ctx).GetAll()
	}

	return s.tx.Documents(query).GetAll()
}

func (s *docStore) create(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if s.tx == nil {
		_, err := ref.Create(ctx, data)

		return err
	}

	return s.tx.Create(ref, data)
}

func (s *docStore) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	if s.tx == nil {
		_, err := ref.Update(ctx, updates)

		return err
	}

	return s.tx.Update(ref, updates)
}

func (s *docStore) delete(ctx context.Context, ref *firestore.DocumentRef) error {
	if s.tx == nil {
		_, err := ref.Delete(ctx)

		return err
	}

	return s.tx.Delete(ref)
}
