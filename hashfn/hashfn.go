// Package hashfn wraps the hash functions under comparison behind a
// uniform interface and carries their static SNARK cost figures.
package hashfn

import (
	"crypto/sha256"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"golang.org/x/crypto/sha3"
)

// Func is a single hash function under comparison.
type Func struct {
	Name string
	Hash func(data []byte) []byte
}

// All returns the compared hash functions in report order.
func All() []Func {
	return []Func{
		{Name: "SHA-256", Hash: SHA256},
		{Name: "Keccak-256", Hash: Keccak256},
		{Name: "Poseidon", Hash: Poseidon},
	}
}

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)

	return sum[:]
}

// Keccak256 returns the legacy Keccak-256 digest of data, the variant
// used by Ethereum.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)

	return h.Sum(nil)
}

// Poseidon hashes data with Poseidon over the BN254 scalar field. The
// input bytes are reduced into a single field element, and the digest is
// the canonical big-endian encoding of the output element.
func Poseidon(data []byte) []byte {
	var in fr.Element
	in.SetBytes(data)

	sum, err := poseidon.Hash([]*big.Int{in.BigInt(new(big.Int))})
	if err != nil {
		// Hash only rejects inputs outside the field, which the
		// reduction above rules out.
		panic(err)
	}

	var out fr.Element
	out.SetBigInt(sum)
	digest := out.Bytes()

	return digest[:]
}
