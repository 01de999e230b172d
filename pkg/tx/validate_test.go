package tx

import (
	"testing"

	"github.com/coinmesh-network/coinmesh-core/pkg/crypto"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// fakeIndex/fakeUTXO/fakePool are minimal hand-built stand-ins for the
// node's real stores, following the mock-provider style used throughout
// the corpus's table-driven validation tests.

type fakeIndex map[types.Hash]*Transaction

func (f fakeIndex) GetByID(id types.Hash) (*Transaction, bool) {
	t, ok := f[id]
	return t, ok
}

type fakeUTXO map[types.Hash]bool

func (f fakeUTXO) IsUnspent(id types.Hash) bool { return f[id] }

type fakePool map[types.Hash]bool

func (f fakePool) SpendsInput(id types.Hash) bool { return f[id] }

func TestValidatePreAdmission_Coinbase_Rejected(t *testing.T) {
	_, pub, _ := crypto.GenerateKeypair()
	coinbase := NewCoinbase(pub)

	ok := ValidatePreAdmission(coinbase, fakeIndex{}, fakeUTXO{}, fakePool{})
	if ok {
		t.Error("coinbase transaction should never be admissible to the mempool")
	}
}

func TestValidatePreAdmission_UnknownInput(t *testing.T) {
	priv, pub, _ := crypto.GenerateKeypair()
	unknownID := crypto.Hash([]byte("never seen"))

	candidate := &Transaction{Output: pub, Input: &unknownID}
	candidate.Sign(priv)

	ok := ValidatePreAdmission(candidate, fakeIndex{}, fakeUTXO{}, fakePool{})
	if ok {
		t.Error("transaction referencing an unknown input should be rejected")
	}
}

func TestValidatePreAdmission_BadSignature(t *testing.T) {
	funderPriv, funderPub, _ := crypto.GenerateKeypair()
	_ = funderPriv
	funding := NewCoinbase(funderPub)
	fundingID := funding.ID()

	attackerPriv, _, _ := crypto.GenerateKeypair()
	_, recipient, _ := crypto.GenerateKeypair()

	candidate := &Transaction{Output: recipient, Input: &fundingID}
	candidate.Sign(attackerPriv) // signed with the wrong key

	index := fakeIndex{fundingID: funding}
	utxo := fakeUTXO{fundingID: true}

	ok := ValidatePreAdmission(candidate, index, utxo, fakePool{})
	if ok {
		t.Error("transaction signed by the wrong key should be rejected")
	}
}

func TestValidatePreAdmission_AlreadySpent(t *testing.T) {
	funderPriv, funderPub, _ := crypto.GenerateKeypair()
	funding := NewCoinbase(funderPub)
	fundingID := funding.ID()

	_, recipient, _ := crypto.GenerateKeypair()
	candidate := &Transaction{Output: recipient, Input: &fundingID}
	candidate.Sign(funderPriv)

	index := fakeIndex{fundingID: funding}
	utxo := fakeUTXO{fundingID: false} // already spent

	ok := ValidatePreAdmission(candidate, index, utxo, fakePool{})
	if ok {
		t.Error("transaction spending an already-spent input should be rejected")
	}
}

func TestValidatePreAdmission_MempoolConflict(t *testing.T) {
	funderPriv, funderPub, _ := crypto.GenerateKeypair()
	funding := NewCoinbase(funderPub)
	fundingID := funding.ID()

	_, recipient, _ := crypto.GenerateKeypair()
	candidate := &Transaction{Output: recipient, Input: &fundingID}
	candidate.Sign(funderPriv)

	index := fakeIndex{fundingID: funding}
	utxo := fakeUTXO{fundingID: true}
	pool := fakePool{fundingID: true} // another pending tx already spends it

	ok := ValidatePreAdmission(candidate, index, utxo, pool)
	if ok {
		t.Error("transaction conflicting with a pending mempool entry should be rejected")
	}
}

func TestValidatePreAdmission_Valid(t *testing.T) {
	funderPriv, funderPub, _ := crypto.GenerateKeypair()
	funding := NewCoinbase(funderPub)
	fundingID := funding.ID()

	_, recipient, _ := crypto.GenerateKeypair()
	candidate := &Transaction{Output: recipient, Input: &fundingID}
	candidate.Sign(funderPriv)

	index := fakeIndex{fundingID: funding}
	utxo := fakeUTXO{fundingID: true}

	ok := ValidatePreAdmission(candidate, index, utxo, fakePool{})
	if !ok {
		t.Error("well-formed transaction spending an unspent, unconflicted input should be admissible")
	}
}
