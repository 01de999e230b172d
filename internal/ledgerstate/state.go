// Package ledgerstate bundles the three collections a node maintains in
// lockstep — chain, UTXO set, mempool — and the operations that keep them
// consistent across speculative mutation (reorg) and rollback.
package ledgerstate

import (
	"github.com/coinmesh-network/coinmesh-core/internal/ledgerstate/utxoset"
	"github.com/coinmesh-network/coinmesh-core/internal/mempool"
	"github.com/coinmesh-network/coinmesh-core/pkg/block"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// State is the mutable bundle a Node maintains: its chain, its unspent
// outputs, and its pending mempool.
type State struct {
	Chain   []*block.Block
	UTXO    *utxoset.Set
	Mempool *mempool.Pool
}

// New creates an empty state: no blocks, no coins, no pending transactions.
func New() *State {
	return &State{
		Chain:   nil,
		UTXO:    utxoset.New(),
		Mempool: mempool.New(),
	}
}

// Tip returns the previous-block reference a new block extending this
// state's chain must carry: the hash of the latest block, or the genesis
// sentinel if the chain is empty.
func (s *State) Tip() block.PrevRef {
	if len(s.Chain) == 0 {
		return block.Genesis()
	}
	return block.RefTo(s.Chain[len(s.Chain)-1].Hash())
}

// Refs returns the sequence of block references this chain is built from,
// earliest first, beginning with the genesis sentinel:
// [genesis, hash(chain[0]), ..., hash(chain[-1])]. Fork discovery walks a
// candidate branch back to the first entry it shares with this sequence.
func (s *State) Refs() []block.PrevRef {
	refs := make([]block.PrevRef, 0, len(s.Chain)+1)
	refs = append(refs, block.Genesis())
	for _, b := range s.Chain {
		refs = append(refs, block.RefTo(b.Hash()))
	}
	return refs
}

// IndexOf returns the position of ref within Refs(), and true if found.
func (s *State) IndexOf(ref block.PrevRef) (int, bool) {
	for i, r := range s.Refs() {
		if r.Equal(ref) {
			return i, true
		}
	}
	return 0, false
}

// GetBlock returns the block in this chain with the given hash.
func (s *State) GetBlock(h types.Hash) (*block.Block, bool) {
	for _, b := range s.Chain {
		if b.Hash() == h {
			return b, true
		}
	}
	return nil, false
}

// Clone returns a copy of the state suitable for speculative mutation: a
// candidate reorg rolls back and replays blocks on the clone, and only
// replaces the incumbent state if the clone proves strictly better. Chain
// blocks themselves are never mutated in place (only appended or popped),
// so copying the slice of block pointers into a fresh backing array is
// sufficient, without copying the blocks themselves; UTXO set and mempool are
// deep-copied since both are mutated entry-by-entry during rollback and
// roll-forward.
func (s *State) Clone() *State {
	chainCopy := make([]*block.Block, len(s.Chain))
	copy(chainCopy, s.Chain)
	return &State{
		Chain:   chainCopy,
		UTXO:    s.UTXO.Clone(),
		Mempool: s.Mempool.Clone(),
	}
}
