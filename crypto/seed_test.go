package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateServerSeed(t *testing.T) {
	seed, hash := GenerateServerSeed()

	require.Len(t, seed, 64, "32 random bytes, hex encoded")
	require.Len(t, hash, 64)
	assert.True(t, VerifySeed(seed, hash))

	// Fresh seed each round
	seed2, _ := GenerateServerSeed()
	assert.NotEqual(t, seed, seed2)
}

func TestVerifySeed_RejectsTampering(t *testing.T) {
	seed, hash := GenerateServerSeed()

	assert.False(t, VerifySeed(seed+"x", hash))
	assert.False(t, VerifySeed("", hash))
	assert.False(t, VerifySeed(seed, HashSeed("other")))
}

func TestHashSeed_Deterministic(t *testing.T) {
	assert.Equal(t, HashSeed("abc"), HashSeed("abc"))
	assert.NotEqual(t, HashSeed("abc"), HashSeed("abd"))
}
