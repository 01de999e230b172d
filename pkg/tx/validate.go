package tx

import (
	"github.com/coinmesh-network/coinmesh-core/pkg/crypto"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// TxIndexProvider resolves a transaction by its ID, across every
// transaction a node has ever observed (chain or mempool), so that a
// candidate's claimed input can be resolved to the transaction it spends.
type TxIndexProvider interface {
	GetByID(id types.Hash) (*Transaction, bool)
}

// UTXOProvider reports whether a given transaction ID still has an unspent
// output.
type UTXOProvider interface {
	IsUnspent(id types.Hash) bool
}

// MempoolProvider reports whether some pending transaction already spends
// the given input, guarding against two mempool entries racing to spend
// the same coin.
type MempoolProvider interface {
	SpendsInput(input types.Hash) bool
}

// ValidatePreAdmission reports whether candidate may be admitted to the
// mempool. A non-coinbase transaction is admissible only if:
//  1. it carries an input,
//  2. the input resolves to a transaction the node has already observed,
//  3. its signature verifies against the output public key of that
//     referenced transaction,
//  4. the referenced output is still unspent, and
//  5. no transaction already in the mempool spends the same input.
//
// Coinbase transactions (no input) are never admitted to the mempool —
// they only ever arrive as the first transaction of a mined block.
func ValidatePreAdmission(candidate *Transaction, index TxIndexProvider, utxo UTXOProvider, pool MempoolProvider) bool {
	if candidate.Input == nil {
		return false
	}

	referenced, ok := index.GetByID(*candidate.Input)
	if !ok {
		return false
	}

	if !crypto.Verify(candidate.SpendMessage(), candidate.Signature, referenced.Output) {
		return false
	}

	if !utxo.IsUnspent(*candidate.Input) {
		return false
	}

	if pool.SpendsInput(*candidate.Input) {
		return false
	}

	return true
}
