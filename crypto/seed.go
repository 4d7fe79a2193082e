package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateServerSeed returns a fresh random seed and its sha256 hash.
// The hash is published when a round starts; the seed is revealed at
// resolution so clients can verify the shuffle or race was committed
// before any bet settled.
func GenerateServerSeed() (seed string, hash string) {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	seed = hex.EncodeToString(bytes)
	hash = HashSeed(seed)

	return
}

// HashSeed returns the hex sha256 commitment for a seed.
func HashSeed(seed string) string {
	h := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(h[:])
}

// VerifySeed checks a revealed seed against its published commitment.
func VerifySeed(seed, hash string) bool {
	return HashSeed(seed) == hash
}
