package block

import "github.com/coinmesh-network/coinmesh-core/pkg/types"

// BlockSize is the maximum number of transactions a block may carry.
const BlockSize = 10

// NumCoinbasePerBlock is the exact number of coinbase transactions a
// structurally valid block must contain.
const NumCoinbasePerBlock = 1

// ValidateStructure reports whether b is structurally well-formed:
//   - it has at least one and at most BlockSize transactions, and
//   - it contains exactly NumCoinbasePerBlock coinbase transactions.
//
// This checks shape only — it says nothing about whether b's hash matches
// a claimed value, nor whether its non-coinbase transactions are
// individually valid against some UTXO set. Hash matching is the caller's
// responsibility (it depends on what hash the block is claimed to have);
// full transaction-level validation happens during roll-forward.
func ValidateStructure(b *Block) bool {
	n := len(b.Transactions)
	if n == 0 || n > BlockSize {
		return false
	}

	coinbaseCount := 0
	for _, t := range b.Transactions {
		if t.IsCoinbase() {
			coinbaseCount++
		}
	}
	return coinbaseCount == NumCoinbasePerBlock
}

// ValidateHash reports whether b's computed hash matches expected — the
// structural check a receiver runs on a block claimed to have this hash.
func ValidateHash(b *Block, expected types.Hash) bool {
	return b.Hash() == expected
}
