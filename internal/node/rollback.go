package node

import (
	"github.com/coinmesh-network/coinmesh-core/internal/ledgerstate"
	klog "github.com/coinmesh-network/coinmesh-core/internal/log"
	"github.com/coinmesh-network/coinmesh-core/pkg/block"
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// rollbackLatestBlock pops the tip block from s, undoing its effects on
// UTXO and mempool:
//   - every transaction B introduced is now unspent-by-B, so it is
//     removed from the UTXO set (it no longer exists once B is undone);
//   - every non-coinbase transaction's consumed input is restored to the
//     UTXO set, looked up in txIndex (every transaction ever observed is
//     kept there forever, so the spent coin is always found);
//   - any mempool entry spending a coin that existed only because of B is
//     purged, since that coin no longer exists once B is undone.
func rollbackLatestBlock(s *ledgerstate.State, txIndex map[types.Hash]*tx.Transaction) *block.Block {
	n := len(s.Chain)
	b := s.Chain[n-1]
	s.Chain = s.Chain[:n-1]

	introduced := make(map[types.Hash]bool, len(b.Transactions))
	for _, t := range b.Transactions {
		id := t.ID()
		introduced[id] = true
		s.UTXO.Remove(id)
	}

	for _, t := range b.Transactions {
		if t.Input == nil {
			continue
		}
		if spent, ok := txIndex[*t.Input]; ok {
			s.UTXO.Add(spent)
		}
	}

	for _, pending := range s.Mempool.Head(s.Mempool.Count()) {
		if pending.Input != nil && introduced[*pending.Input] {
			s.Mempool.Remove(pending.ID())
		}
	}

	klog.Chain.Debug().
		Str("hash", b.Hash().String()[:12]).
		Int("height", len(s.Chain)).
		Msg("rolled back block")

	return b
}

// rollbackTo pops blocks off s's tip, one at a time, until the tip
// matches forkRef (which may be the genesis sentinel, meaning "roll back
// every block").
func rollbackTo(s *ledgerstate.State, forkRef block.PrevRef, txIndex map[types.Hash]*tx.Transaction) {
	for !s.Tip().Equal(forkRef) {
		rollbackLatestBlock(s, txIndex)
	}
}
