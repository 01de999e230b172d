// Package wallet picks which of a node's own coins to spend when creating
// a new transaction.
package wallet

import (
	"errors"

	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// ErrNoUTXOs is returned when the node owns no coins at all.
var ErrNoUTXOs = errors.New("no coins available")

// ErrAllFrozen is returned when every coin the node owns is already
// promised by a pending mempool transaction.
var ErrAllFrozen = errors.New("all owned coins are frozen by the mempool")

// SelectCoin picks one spendable coin from owned, excluding any coin ID
// present in frozen (coins already committed to a pending transaction).
// There is exactly one coin per transaction in this ledger, so selection
// has no change/waste tradeoff to optimize — it returns an arbitrary
// available coin, not necessarily the smallest or oldest.
func SelectCoin(owned []types.Hash, frozen map[types.Hash]bool) (types.Hash, error) {
	if len(owned) == 0 {
		return types.Hash{}, ErrNoUTXOs
	}
	for _, id := range owned {
		if !frozen[id] {
			return id, nil
		}
	}
	return types.Hash{}, ErrAllFrozen
}
