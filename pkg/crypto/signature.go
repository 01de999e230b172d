package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// PrivateKey wraps an Ed25519 private key.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenerateKeypair generates a new Ed25519 keypair.
func GenerateKeypair() (PrivateKey, types.PublicKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, types.PublicKey{}, fmt.Errorf("generate keypair: %w", err)
	}

	var pk types.PublicKey
	copy(pk[:], pub)

	return PrivateKey{key: priv}, pk, nil
}

// Sign signs the message with the private key.
func (p PrivateKey) Sign(message []byte) types.Signature {
	raw := ed25519.Sign(p.key, message)
	var sig types.Signature
	copy(sig[:], raw)
	return sig
}

// PublicKey returns the public key corresponding to this private key.
func (p PrivateKey) PublicKey() types.PublicKey {
	pub := p.key.Public().(ed25519.PublicKey)
	var pk types.PublicKey
	copy(pk[:], pub)
	return pk
}

// Verify reports whether sig is a valid Ed25519 signature over message by
// pub. It never panics, returning false on any malformed input.
func Verify(message []byte, sig types.Signature, pub types.PublicKey) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig[:])
}
