package node

import (
	"crypto/rand"

	"github.com/coinmesh-network/coinmesh-core/pkg/block"
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// MineBlock builds a block awarding one coin to this node, fills the rest
// of its capacity from the head of the mempool (oldest pending
// transactions first), applies it to this node's own state without
// re-validation (the node just constructed it), publishes it to every
// peer, and returns its hash.
func (n *Node) MineBlock() types.Hash {
	coinbase := &tx.Transaction{Output: n.pub}
	if _, err := rand.Read(coinbase.Signature[:]); err != nil {
		// crypto/rand failing means the system CSPRNG is broken; there is
		// no sane fallback for a coinbase's conventionally-random signature.
		panic("node: mine block: " + err.Error())
	}

	n.mu.Lock()
	slotsForMempool := block.BlockSize - block.NumCoinbasePerBlock
	included := n.state.Mempool.Head(slotsForMempool)

	txs := make([]*tx.Transaction, 0, 1+len(included))
	txs = append(txs, coinbase)
	txs = append(txs, included...)

	b := block.New(n.state.Tip(), txs)
	hash := b.Hash()

	applyBlock(n.state, n.txIndex, b)
	n.mu.Unlock()

	n.logger.Info().
		Str("hash", hash.String()[:12]).
		Int("txs", len(txs)).
		Msg("mined block")

	n.publishLatestBlock()
	return hash
}
