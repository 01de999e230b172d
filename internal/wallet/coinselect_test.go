package wallet

import (
	"errors"
	"testing"

	"github.com/coinmesh-network/coinmesh-core/pkg/crypto"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

func TestSelectCoin_NoUTXOs(t *testing.T) {
	_, err := SelectCoin(nil, nil)
	if !errors.Is(err, ErrNoUTXOs) {
		t.Errorf("expected ErrNoUTXOs, got %v", err)
	}
}

func TestSelectCoin_PicksAvailable(t *testing.T) {
	a := crypto.Hash([]byte("a"))
	b := crypto.Hash([]byte("b"))

	got, err := SelectCoin([]types.Hash{a, b}, map[types.Hash]bool{a: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != b {
		t.Errorf("SelectCoin() = %s, want the only non-frozen coin %s", got, b)
	}
}

func TestSelectCoin_AllFrozen(t *testing.T) {
	a := crypto.Hash([]byte("a"))
	_, err := SelectCoin([]types.Hash{a}, map[types.Hash]bool{a: true})
	if !errors.Is(err, ErrAllFrozen) {
		t.Errorf("expected ErrAllFrozen, got %v", err)
	}
}
