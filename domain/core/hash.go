package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// FamilyHash fingerprints a p-value family together with its alpha.
// Callers pass the sorted sequence so that permutations hash identically.
func FamilyHash(sorted []float64, alpha float64) Hash {
	buf := make([]byte, 8*(len(sorted)+1))
	binary.BigEndian.PutUint64(buf, math.Float64bits(alpha))
	for i, p := range sorted {
		binary.BigEndian.PutUint64(buf[8*(i+1):], math.Float64bits(p))
	}
	return NewHash(buf)
}
