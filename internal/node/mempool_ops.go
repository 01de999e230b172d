package node

import (
	klog "github.com/coinmesh-network/coinmesh-core/internal/log"
	"github.com/coinmesh-network/coinmesh-core/internal/wallet"
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// AddTransactionToMempool validates candidate and, if admissible, appends
// it to the mempool and propagates it to every peer that does not already
// know it. Propagation both spreads the transaction through the network
// and terminates the recursion: a peer that already holds the ID returns
// false without calling any further.
func (n *Node) AddTransactionToMempool(candidate *tx.Transaction) bool {
	n.mu.Lock()
	id := candidate.ID()
	if !tx.ValidatePreAdmission(candidate, txIndexAdapter{n}, n.state.UTXO, n.state.Mempool) {
		n.mu.Unlock()
		klog.Mempool.Debug().Str("node", n.pub.String()[:12]).Str("tx", id.String()[:12]).Msg("rejected transaction at admission")
		return false
	}

	n.state.Mempool.Add(candidate)
	n.txIndex[id] = candidate

	peers := make([]Peer, 0, len(n.peers))
	for _, p := range n.peers {
		peers = append(peers, p)
	}
	n.mu.Unlock()

	klog.Mempool.Debug().Str("node", n.pub.String()[:12]).Str("tx", id.String()[:12]).Msg("admitted transaction to mempool")

	for _, p := range peers {
		if !peerHasTx(p, id) {
			p.AddTransactionToMempool(candidate)
		}
	}
	return true
}

// peerHasTx reports whether peer's mempool already contains id, by
// scanning its reported mempool contents. This mirrors the source
// protocol's own mechanism: there is no dedicated "have you seen this
// tx" query, only the mempool listing itself.
func peerHasTx(p Peer, id types.Hash) bool {
	for _, t := range p.GetMempool() {
		if t.ID() == id {
			return true
		}
	}
	return false
}

// CreateTransaction spends one of this node's own unspent, unfrozen coins
// to target, signs it, admits it to this node's own mempool (which
// propagates it to peers), and returns it. It returns nil if the node has
// no spendable coin — either because it owns none, or because every coin
// it owns is already promised by a pending mempool entry.
func (n *Node) CreateTransaction(target types.PublicKey) *tx.Transaction {
	n.mu.Lock()
	owned := n.state.UTXO.OwnedBy(n.pub)

	frozen := make(map[types.Hash]bool)
	for _, p := range n.state.Mempool.Head(n.state.Mempool.Count()) {
		if p.Input == nil {
			continue
		}
		for _, id := range owned {
			if *p.Input == id {
				frozen[id] = true
			}
		}
	}

	priv := n.priv
	n.mu.Unlock()

	coin, err := wallet.SelectCoin(owned, frozen)
	if err != nil {
		return nil
	}

	candidate := &tx.Transaction{Output: target, Input: &coin}
	candidate.Sign(priv)

	n.AddTransactionToMempool(candidate)
	return candidate
}

// txIndexAdapter exposes a Node's txIndex through tx.TxIndexProvider
// without requiring callers outside this package to reach into
// unexported fields.
type txIndexAdapter struct{ n *Node }

func (a txIndexAdapter) GetByID(id types.Hash) (*tx.Transaction, bool) {
	t, ok := a.n.txIndex[id]
	return t, ok
}
