package repository

import (
	"context"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

// TransactionRepository defines storage access for transactions. Transactions are never
// updated or deleted outside of a store reset.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	RecordIdempotencyKey(ctx context.Context, key, transactionID string) error
}

type transactionRepository struct {
	store *Store
}

// NewTransactionRepository returns a Store-backed implementation.
func NewTransactionRepository(store *Store) TransactionRepository {
	return &transactionRepository{store: store}
}

// Create assigns a fresh id to tx and appends it to the owner's history.
func (r *transactionRepository) Create(_ context.Context, tx *domain.Transaction) error {
	tx.ID = r.store.newID(transactionIDPrefix, func(id string) bool {
		_, ok := r.store.transactions[id]
		return ok
	})
	r.store.transactions[tx.ID] = *tx
	r.store.txByUser[tx.UserID] = append(r.store.txByUser[tx.UserID], tx.ID)
	return nil
}

// ListByUser returns the user's transactions in creation order. The result is never nil.
func (r *transactionRepository) ListByUser(_ context.Context, userID string) ([]domain.Transaction, error) {
	ids := r.store.txByUser[userID]
	out := make([]domain.Transaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.store.transactions[id])
	}
	return out, nil
}

// RecordIdempotencyKey remembers which transaction a client key was sent with. Keys are kept
// for inspection only; a repeated key does not short-circuit creation.
func (r *transactionRepository) RecordIdempotencyKey(_ context.Context, key, transactionID string) error {
	if key == "" {
		return nil
	}
	r.store.idempotencyKey[key] = transactionID
	return nil
}
