package types

import (
	"strings"
	"testing"
)

func TestPublicKey_IsZero(t *testing.T) {
	var zero PublicKey
	if !zero.IsZero() {
		t.Error("zero-value PublicKey should be zero")
	}

	nonZero := PublicKey{0x01}
	if nonZero.IsZero() {
		t.Error("non-zero PublicKey should not be zero")
	}
}

func TestPublicKey_JSONRoundtrip(t *testing.T) {
	var pk PublicKey
	pk[0] = 0xab
	pk[31] = 0xcd

	data, err := pk.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got PublicKey
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got != pk {
		t.Errorf("roundtrip mismatch: got %s, want %s", got, pk)
	}
}

func TestPublicKey_UnmarshalJSON_WrongLength(t *testing.T) {
	var pk PublicKey
	err := pk.UnmarshalJSON([]byte(`"abcd"`))
	if err == nil {
		t.Error("expected error for short hex")
	}
}

func TestSignature_JSONRoundtrip(t *testing.T) {
	var sig Signature
	sig[0] = 0x11
	sig[63] = 0x22

	data, err := sig.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Signature
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got != sig {
		t.Errorf("roundtrip mismatch: got %s, want %s", got, sig)
	}
	if !strings.HasPrefix(got.String(), "11") {
		t.Errorf("String() should start with 11, got %s", got.String())
	}
}
