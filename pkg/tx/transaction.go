// Package tx defines the transaction type and its validation rules.
package tx

import (
	"github.com/coinmesh-network/coinmesh-core/pkg/crypto"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// Transaction moves exactly one coin from one owner to another. It carries
// at most a single input (the coin being spent) and exactly one output
// (the coin's new owner). A transaction with no input is a coinbase: it
// mints a new coin rather than spending one.
type Transaction struct {
	Output    types.PublicKey `json:"output"`
	Input     *types.Hash     `json:"input,omitempty"`
	Signature types.Signature `json:"signature"`
}

// NewCoinbase builds an unsigned coinbase transaction minting a coin to
// recipient. Coinbase transactions carry no input and an all-zero
// signature — there is nothing to authorize.
func NewCoinbase(recipient types.PublicKey) *Transaction {
	return &Transaction{Output: recipient}
}

// IsCoinbase reports whether the transaction has no input, i.e. it mints a
// new coin rather than spending an existing one.
func (t *Transaction) IsCoinbase() bool {
	return t.Input == nil
}

// idBytes returns the byte encoding hashed into the transaction ID:
// output || input (if present). Note this is NOT the same ordering as the
// signed message (SpendMessage): the ID and the signature commit to the
// same two fields in opposite order.
func (t *Transaction) idBytes() []byte {
	buf := make([]byte, 0, types.PublicKeySize+types.HashSize)
	buf = append(buf, t.Output[:]...)
	if t.Input != nil {
		buf = append(buf, t.Input[:]...)
	}
	return buf
}

// SpendMessage returns the message a spend's signature is made over:
// input || output. Only defined for non-coinbase transactions — a
// coinbase's signature is never verified.
func (t *Transaction) SpendMessage() []byte {
	buf := make([]byte, 0, types.HashSize+types.PublicKeySize)
	if t.Input != nil {
		buf = append(buf, t.Input[:]...)
	}
	buf = append(buf, t.Output[:]...)
	return buf
}

// ID computes the transaction's identifying hash: SHA-256 of
// output || input (if present) || signature.
func (t *Transaction) ID() types.Hash {
	buf := make([]byte, 0, types.PublicKeySize+types.HashSize+types.SignatureSize)
	buf = append(buf, t.idBytes()...)
	buf = append(buf, t.Signature[:]...)
	return crypto.Hash(buf)
}

// Sign signs the transaction over SpendMessage (input || output) with
// priv and stores the resulting signature. Coinbase transactions are
// never signed this way — their signature is conventionally random bytes,
// never verified by anyone.
func (t *Transaction) Sign(priv crypto.PrivateKey) {
	t.Signature = priv.Sign(t.SpendMessage())
}
