// Package ledger holds the in-memory transaction store for a session.
package ledger

import (
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/moneymind-dev/moneymind/internal/model"
)

// Store is an append-only, insertion-ordered collection of transactions.
// It lives for the process lifetime; nothing is ever updated or removed.
type Store struct {
	mu  sync.RWMutex
	txs []model.Transaction
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Append assigns the transaction an ID, adds it to the end of the ledger,
// and returns the stored record.
func (s *Store) Append(tx model.Transaction) model.Transaction {
	tx.ID = ulid.Make().String()

	s.mu.Lock()
	s.txs = append(s.txs, tx)
	s.mu.Unlock()

	return tx
}

// All returns a snapshot of the ledger in insertion order.
func (s *Store) All() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Len returns the number of recorded transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txs)
}
