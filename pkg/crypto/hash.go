// Package crypto provides the cryptographic primitives the ledger is
// contractually specified against: SHA-256 hashing and Ed25519 signatures.
package crypto

import (
	"crypto/sha256"

	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// Hash computes the SHA-256 digest of the input data.
func Hash(data []byte) types.Hash {
	return sha256.Sum256(data)
}
