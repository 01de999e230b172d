// Package utxoset holds the set of spendable coins: chain transactions
// whose output has not yet been consumed as another transaction's input.
//
// The originating design describes the UTXO set as an ordered list; it is
// semantically a set keyed by transaction ID, so it is backed here by a
// map for O(1) spend checks and exposed as an iterable slice.
package utxoset

import (
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// Set is the collection of unspent transactions, keyed by TxID.
//
// Set is not safe for concurrent use by multiple goroutines; callers
// (internal/node) serialize access with their own lock.
type Set struct {
	coins map[types.Hash]*tx.Transaction
}

// New creates an empty UTXO set.
func New() *Set {
	return &Set{coins: make(map[types.Hash]*tx.Transaction)}
}

// Add records transaction as unspent.
func (s *Set) Add(transaction *tx.Transaction) {
	s.coins[transaction.ID()] = transaction
}

// Remove marks the coin with the given ID as spent.
func (s *Set) Remove(id types.Hash) {
	delete(s.coins, id)
}

// IsUnspent reports whether id identifies a currently-unspent coin.
func (s *Set) IsUnspent(id types.Hash) bool {
	_, ok := s.coins[id]
	return ok
}

// Get retrieves the unspent transaction with the given ID.
func (s *Set) Get(id types.Hash) (*tx.Transaction, bool) {
	t, ok := s.coins[id]
	return t, ok
}

// Count returns the number of unspent coins.
func (s *Set) Count() int {
	return len(s.coins)
}

// List returns the unspent coins in no particular order. The returned
// slice is a fresh copy; mutating it does not affect the set.
func (s *Set) List() []*tx.Transaction {
	out := make([]*tx.Transaction, 0, len(s.coins))
	for _, t := range s.coins {
		out = append(out, t)
	}
	return out
}

// OwnedBy returns the IDs of unspent coins whose output belongs to owner.
func (s *Set) OwnedBy(owner types.PublicKey) []types.Hash {
	var out []types.Hash
	for id, t := range s.coins {
		if t.Output == owner {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns a deep copy of the set, for use when speculatively
// mutating node state (e.g. during a candidate reorg) without disturbing
// the incumbent UTXO set on failure.
func (s *Set) Clone() *Set {
	clone := &Set{coins: make(map[types.Hash]*tx.Transaction, len(s.coins))}
	for id, t := range s.coins {
		txCopy := *t
		clone.coins[id] = &txCopy
	}
	return clone
}
