// Package node implements the ledger's state machine: a single
// participant that mines blocks, admits transactions, and gossips both to
// its directly-connected peers, converging with them on the longest valid
// chain via reorg.
//
// Peers are in-process references reachable by direct method call (per
// spec, real network transport is out of scope); this package defines the
// protocol those calls implement, not a wire encoding.
package node

import (
	"sync"

	"github.com/coinmesh-network/coinmesh-core/internal/ledgerstate"
	klog "github.com/coinmesh-network/coinmesh-core/internal/log"
	"github.com/coinmesh-network/coinmesh-core/internal/mempool"
	"github.com/coinmesh-network/coinmesh-core/pkg/block"
	"github.com/coinmesh-network/coinmesh-core/pkg/crypto"
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
	"github.com/rs/zerolog"
)

// Peer is the protocol a node's connections speak to one another. *Node
// satisfies it; tests may supply fakes to exercise a single node's
// reaction to a scripted peer without constructing a whole graph.
type Peer interface {
	Address() types.PublicKey
	Connect(other Peer) error
	DisconnectFrom(other Peer)
	GetBlock(h types.Hash) (*block.Block, error)
	GetMempool() []*tx.Transaction
	AddTransactionToMempool(t *tx.Transaction) bool
	GetIntroducedToNewBlock(ref block.PrevRef, sender Peer)
}

// Node is one participant in the peer-to-peer ledger: an identity, its
// chain/UTXO/mempool state, a set of directly-connected peers, and an
// index of every transaction it has ever observed.
//
// Node owns a single mutex guarding its own state, peers, and txIndex
// fields. The lock is held only around pure local reads/mutations of
// those fields — never across a call into another Node's exported
// method — so that the reentrant connect/gossip handshakes the protocol
// requires (a peer calling back into us on the same goroutine stack)
// cannot deadlock against our own lock.
type Node struct {
	mu sync.Mutex

	priv crypto.PrivateKey
	pub  types.PublicKey

	state   *ledgerstate.State
	peers   map[types.PublicKey]Peer
	txIndex map[types.Hash]*tx.Transaction

	logger zerolog.Logger
}

// New constructs a Node with a freshly generated keypair and empty state.
func New() *Node {
	priv, pub, err := crypto.GenerateKeypair()
	if err != nil {
		// crypto/ed25519's key generation only fails if the system's CSPRNG
		// is broken, which the process cannot meaningfully recover from.
		panic("node: generate keypair: " + err.Error())
	}

	n := &Node{
		priv:    priv,
		pub:     pub,
		state:   ledgerstate.New(),
		peers:   make(map[types.PublicKey]Peer),
		txIndex: make(map[types.Hash]*tx.Transaction),
		logger:  klog.Node.With().Str("addr", pub.String()[:12]).Logger(),
	}
	n.logger.Debug().Msg("node created")
	return n
}

// Address returns the node's public key, used both as its network
// identity and as the recipient address for coins it owns.
func (n *Node) Address() types.PublicKey {
	return n.pub
}

// Connections returns the node's currently-connected peers.
func (n *Node) Connections() []Peer {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Peer, 0, len(n.peers))
	for _, p := range n.peers {
		out = append(out, p)
	}
	return out
}

// Mempool returns the node's pending, not-yet-mined transactions in
// admission order.
func (n *Node) Mempool() []*tx.Transaction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.Mempool.Head(n.state.Mempool.Count())
}

// GetMempool satisfies Peer for peers inspecting our pending set; it is
// equivalent to Mempool and is never synchronized automatically on
// connect (spec §4.4: "Mempool is not synchronized on connect").
func (n *Node) GetMempool() []*tx.Transaction {
	return n.Mempool()
}

// UTXO returns the node's unspent-transaction set.
func (n *Node) UTXO() []*tx.Transaction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.UTXO.List()
}

// Balance returns the number of coins this node currently owns — each
// UTXO entry addressed to this node's public key is worth exactly one
// coin.
func (n *Node) Balance() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.state.UTXO.OwnedBy(n.pub))
}

// LatestHash returns the identifier of the tip of the node's chain, or
// the genesis sentinel if the chain is empty.
func (n *Node) LatestHash() block.PrevRef {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.Tip()
}

// GetBlock returns the block with the given hash from this node's chain.
func (n *Node) GetBlock(h types.Hash) (*block.Block, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	b, ok := n.state.GetBlock(h)
	if !ok {
		return nil, ErrUnknownBlock
	}
	return b, nil
}

// ClearMempool discards every pending transaction from this node's
// mempool without propagating anything to peers.
func (n *Node) ClearMempool() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.Mempool = mempool.New()
}
