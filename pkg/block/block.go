// Package block defines the block type and its structural validation.
package block

import (
	"github.com/coinmesh-network/coinmesh-core/pkg/crypto"
	"github.com/coinmesh-network/coinmesh-core/pkg/tx"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// genesisSentinel is the reserved literal denoting "no previous block".
// It is deliberately not a types.Hash: at 7 bytes it can never collide
// with a genuine 32-byte SHA-256 digest, and representing it with its own
// type rather than a magic Hash value keeps "this chain has no ancestor"
// from being confused with "this chain's ancestor happens to hash to
// this value".
var genesisSentinel = []byte("Genesis")

// PrevRef identifies the block that a block extends: either a concrete
// block hash, or the genesis sentinel marking "no previous block".
type PrevRef struct {
	hash      types.Hash
	isGenesis bool
}

// Genesis returns the sentinel PrevRef used by the first block of a chain.
func Genesis() PrevRef {
	return PrevRef{isGenesis: true}
}

// RefTo returns a PrevRef pointing at a concrete prior block hash.
func RefTo(h types.Hash) PrevRef {
	return PrevRef{hash: h}
}

// IsGenesis reports whether this ref is the genesis sentinel.
func (r PrevRef) IsGenesis() bool {
	return r.isGenesis
}

// Hash returns the referenced block hash and true, or the zero hash and
// false if this ref is the genesis sentinel.
func (r PrevRef) Hash() (types.Hash, bool) {
	if r.isGenesis {
		return types.Hash{}, false
	}
	return r.hash, true
}

// Bytes returns the byte representation of this ref as used in block
// hashing: the sentinel literal for genesis, the raw hash otherwise.
func (r PrevRef) Bytes() []byte {
	if r.isGenesis {
		return genesisSentinel
	}
	return r.hash.Bytes()
}

// Equal reports whether two refs denote the same predecessor.
func (r PrevRef) Equal(other PrevRef) bool {
	return r.isGenesis == other.isGenesis && r.hash == other.hash
}

// Block is an ordered sequence of transactions extending a prior block (or
// the genesis sentinel).
type Block struct {
	PrevBlockHash PrevRef
	Transactions  []*tx.Transaction
}

// New builds a block from a previous-block reference and an ordered list
// of transactions.
func New(prev PrevRef, txs []*tx.Transaction) *Block {
	return &Block{PrevBlockHash: prev, Transactions: txs}
}

// Hash computes the block's identifying hash: SHA-256 of the concatenation
// of every transaction ID in order, followed by the previous block
// reference.
func (b *Block) Hash() types.Hash {
	buf := make([]byte, 0, len(b.Transactions)*types.HashSize+types.HashSize)
	for _, t := range b.Transactions {
		id := t.ID()
		buf = append(buf, id[:]...)
	}
	buf = append(buf, b.PrevBlockHash.Bytes()...)
	return crypto.Hash(buf)
}
