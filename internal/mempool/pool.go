// Package mempool holds pending, not-yet-mined transactions in strict
// admission order.
package mempool

import (
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// Pool holds unconfirmed transactions in the order they were admitted.
// Mining always takes from the head of this order, so — unlike a
// fee-prioritized pool — insertion order is itself part of this type's
// contract, not an implementation detail.
//
// Pool is not safe for concurrent use by multiple goroutines; callers
// (internal/node) serialize access with their own lock.
type Pool struct {
	order []types.Hash
	txs   map[types.Hash]*tx.Transaction
	spend map[types.Hash]types.Hash // input coin ID -> mempool tx ID spending it
}

// New creates an empty mempool.
func New() *Pool {
	return &Pool{
		txs:   make(map[types.Hash]*tx.Transaction),
		spend: make(map[types.Hash]types.Hash),
	}
}

// Add appends transaction to the tail of the pool. The caller is
// responsible for having already validated it — Add does not re-validate.
func (p *Pool) Add(transaction *tx.Transaction) types.Hash {
	id := transaction.ID()
	p.order = append(p.order, id)
	p.txs[id] = transaction
	if transaction.Input != nil {
		p.spend[*transaction.Input] = id
	}
	return id
}

// Has reports whether a transaction with the given ID is in the pool.
func (p *Pool) Has(id types.Hash) bool {
	_, ok := p.txs[id]
	return ok
}

// Get retrieves a pooled transaction by ID.
func (p *Pool) Get(id types.Hash) (*tx.Transaction, bool) {
	t, ok := p.txs[id]
	return t, ok
}

// SpendsInput reports whether some pooled transaction already spends the
// given coin.
func (p *Pool) SpendsInput(input types.Hash) bool {
	_, ok := p.spend[input]
	return ok
}

// Remove drops a transaction from the pool, wherever it sits in admission
// order.
func (p *Pool) Remove(id types.Hash) {
	t, ok := p.txs[id]
	if !ok {
		return
	}
	delete(p.txs, id)
	if t.Input != nil {
		delete(p.spend, *t.Input)
	}
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Count returns the number of pooled transactions.
func (p *Pool) Count() int {
	return len(p.order)
}

// Head returns up to n transactions from the front of admission order,
// without removing them.
func (p *Pool) Head(n int) []*tx.Transaction {
	if n > len(p.order) {
		n = len(p.order)
	}
	out := make([]*tx.Transaction, n)
	for i := 0; i < n; i++ {
		out[i] = p.txs[p.order[i]]
	}
	return out
}

// Clone returns a deep copy of the pool, for use when speculatively
// mutating node state (e.g. during a candidate reorg) without disturbing
// the incumbent mempool on failure.
func (p *Pool) Clone() *Pool {
	clone := &Pool{
		order: append([]types.Hash(nil), p.order...),
		txs:   make(map[types.Hash]*tx.Transaction, len(p.txs)),
		spend: make(map[types.Hash]types.Hash, len(p.spend)),
	}
	for id, t := range p.txs {
		txCopy := *t
		clone.txs[id] = &txCopy
	}
	for in, id := range p.spend {
		clone.spend[in] = id
	}
	return clone
}
