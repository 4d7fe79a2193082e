package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// NewSeededRNG derives a deterministic random source from a seed string.
// The same seed always reproduces the same shuffle and race steps, which
// is what makes revealed server seeds verifiable.
func NewSeededRNG(seed string) *rand.Rand {
	hash := sha256.Sum256([]byte(seed))
	seedInt := int64(binary.BigEndian.Uint64(hash[:8]))
	return rand.New(rand.NewSource(seedInt))
}
