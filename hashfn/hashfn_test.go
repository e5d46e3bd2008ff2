package hashfn

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestSHA256KnownVectors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			input: "abc",
			want:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		got := hex.EncodeToString(SHA256([]byte(tt.input)))
		if got != tt.want {
			t.Errorf("SHA256(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestKeccak256KnownVectors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "",
			want:  "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			input: "abc",
			want:  "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		},
	}

	for _, tt := range tests {
		got := hex.EncodeToString(Keccak256([]byte(tt.input)))
		if got != tt.want {
			t.Errorf("Keccak256(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestPoseidonDeterministic(t *testing.T) {
	input := []byte("This is a test message.")

	first := Poseidon(input)
	second := Poseidon(input)

	if len(first) != 32 {
		t.Fatalf("digest length = %d, want 32", len(first))
	}
	if !bytes.Equal(first, second) {
		t.Error("same input produced different digests")
	}
}

func TestPoseidonDistinctInputs(t *testing.T) {
	a := Poseidon([]byte("input a"))
	b := Poseidon([]byte("input b"))

	if bytes.Equal(a, b) {
		t.Error("distinct inputs produced the same digest")
	}
}

func TestPoseidonDigestInField(t *testing.T) {
	digest := Poseidon([]byte("This is a test message."))

	value := new(big.Int).SetBytes(digest)
	if value.Sign() == 0 {
		t.Error("digest is zero")
	}
	if value.Cmp(fr.Modulus()) >= 0 {
		t.Errorf("digest %s is not a canonical BN254 scalar", value)
	}
}

func TestPoseidonLongInputReduced(t *testing.T) {
	// Inputs longer than the field size must reduce, not panic.
	long := bytes.Repeat([]byte{0xff}, 64)

	digest := Poseidon(long)
	if len(digest) != 32 {
		t.Fatalf("digest length = %d, want 32", len(digest))
	}
}

func TestAllOrder(t *testing.T) {
	want := []string{"SHA-256", "Keccak-256", "Poseidon"}

	fns := All()
	if len(fns) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(fns), len(want))
	}

	for i, fn := range fns {
		if fn.Name != want[i] {
			t.Errorf("All()[%d].Name = %q, want %q", i, fn.Name, want[i])
		}
		if fn.Hash == nil {
			t.Errorf("All()[%d].Hash is nil", i)
		}
	}
}

func TestConstraintEstimates(t *testing.T) {
	want := []ConstraintEstimate{
		{Name: "SHA-256", Constraints: 25000},
		{Name: "Keccak-256", Constraints: 150000},
		{Name: "Poseidon", Constraints: 100},
	}

	got := ConstraintEstimates()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("estimate[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
