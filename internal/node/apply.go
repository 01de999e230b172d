package node

import (
	"github.com/coinmesh-network/coinmesh-core/internal/ledgerstate"
	klog "github.com/coinmesh-network/coinmesh-core/internal/log"
	"github.com/coinmesh-network/coinmesh-core/pkg/block"
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// txIndexMap adapts a plain id->tx map to tx.TxIndexProvider.
type txIndexMap map[types.Hash]*tx.Transaction

func (m txIndexMap) GetByID(id types.Hash) (*tx.Transaction, bool) {
	t, ok := m[id]
	return t, ok
}

// blockSpentGuard layers "no two transactions in this block may spend the
// same input" on top of a MempoolProvider's existing double-spend check,
// so that a maliciously-crafted block cannot sidestep the mempool check
// (which only sees pending transactions, not sibling transactions within
// the very block being validated).
type blockSpentGuard struct {
	tx.MempoolProvider
	spent map[types.Hash]bool
}

func (g blockSpentGuard) SpendsInput(input types.Hash) bool {
	return g.spent[input] || g.MempoolProvider.SpendsInput(input)
}

// tryApplyBlock validates b against expectedHash and s, and — only if
// every check passes — applies it to s and txIndex and appends it to the
// chain. On any failure, s is left exactly as it was before this call.
//
// Per the resolved ambiguity over intra-block spend chaining: every
// non-coinbase transaction in the block is validated against s's state as
// it stood before this block, with no intermediate updates between
// transactions. A later transaction in the block may not spend the
// output of an earlier transaction in the same block — only coins that
// were already unspent before the block began are spendable within it.
func tryApplyBlock(s *ledgerstate.State, txIndex map[types.Hash]*tx.Transaction, b *block.Block, expectedHash types.Hash) bool {
	if !block.ValidateHash(b, expectedHash) || !block.ValidateStructure(b) {
		klog.Chain.Debug().Str("hash", expectedHash.String()[:12]).Msg("rejected block: structure or hash mismatch")
		return false
	}

	guard := blockSpentGuard{MempoolProvider: s.Mempool, spent: make(map[types.Hash]bool)}
	for _, t := range b.Transactions {
		if t.IsCoinbase() {
			continue
		}
		if !tx.ValidatePreAdmission(t, txIndexMap(txIndex), s.UTXO, guard) {
			klog.Chain.Debug().Str("hash", expectedHash.String()[:12]).Str("tx", t.ID().String()[:12]).Msg("rejected block: invalid transaction")
			return false
		}
		guard.spent[*t.Input] = true
	}

	applyBlock(s, txIndex, b)
	return true
}

// applyBlock unconditionally introduces every transaction in b to s (see
// introduceValidTransaction) and appends b to the chain. Callers must have
// already established that b is valid — either because they constructed
// it themselves (mining) or because tryApplyBlock's checks passed.
func applyBlock(s *ledgerstate.State, txIndex map[types.Hash]*tx.Transaction, b *block.Block) {
	for _, t := range b.Transactions {
		introduceValidTransaction(s, txIndex, t)
	}
	s.Chain = append(s.Chain, b)

	klog.Chain.Debug().
		Str("hash", b.Hash().String()[:12]).
		Int("txs", len(b.Transactions)).
		Int("height", len(s.Chain)).
		Msg("applied block")
}

// introduceValidTransaction folds one newly-accepted transaction (whether
// from a mined block or an ingested one) into the state: it stops being
// pending, its input (if any) stops being spendable, and its output
// becomes a new coin.
func introduceValidTransaction(s *ledgerstate.State, txIndex map[types.Hash]*tx.Transaction, t *tx.Transaction) {
	id := t.ID()

	s.Mempool.Remove(id)
	if t.Input != nil {
		removeMempoolEntriesSpending(s, *t.Input, id)
		s.UTXO.Remove(*t.Input)
	}
	s.UTXO.Add(t)
	txIndex[id] = t
}

// removeMempoolEntriesSpending drops, from the mempool, any entry other
// than id that shares the given input — mirroring spec §4.10.3's "remove
// from mempool any entry equal to tx or sharing its input".
func removeMempoolEntriesSpending(s *ledgerstate.State, input, id types.Hash) {
	for _, pending := range s.Mempool.Head(s.Mempool.Count()) {
		if pending.ID() == id {
			continue
		}
		if pending.Input != nil && *pending.Input == input {
			s.Mempool.Remove(pending.ID())
		}
	}
}
