package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// PublicKeySize is the length of an Ed25519 public key in bytes.
const PublicKeySize = 32

// SignatureSize is the length of an Ed25519 signature in bytes.
const SignatureSize = 64

// PublicKey identifies the recipient of a transaction output. Unlike the
// hashed, bech32-encoded address schemes used by multi-asset chains, a coin
// is addressed directly to the raw public key that must sign for it.
type PublicKey [PublicKeySize]byte

// IsZero returns true if the public key is all zeros (the unset value).
func (p PublicKey) IsZero() bool {
	return p == PublicKey{}
}

// String returns the hex-encoded public key.
func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}

// Bytes returns a copy of the public key as a byte slice.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, p[:])
	return b
}

// MarshalJSON encodes the public key as a hex string.
func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a hex string into a public key.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid public key hex: %w", err)
	}
	if len(decoded) != PublicKeySize {
		return fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(decoded))
	}
	copy(p[:], decoded)
	return nil
}

// Signature is a raw Ed25519 signature.
type Signature [SignatureSize]byte

// IsZero returns true if the signature is all zeros (the unset value).
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// String returns the hex-encoded signature.
func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// Bytes returns a copy of the signature as a byte slice.
func (s Signature) Bytes() []byte {
	b := make([]byte, SignatureSize)
	copy(b, s[:])
	return b
}

// MarshalJSON encodes the signature as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a hex string into a signature.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(str)
	if err != nil {
		return fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(decoded) != SignatureSize {
		return fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(decoded))
	}
	copy(s[:], decoded)
	return nil
}
