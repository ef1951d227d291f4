package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustGetRandomInt_NotZero(t *testing.T) {
	n := MustGetRandomInt(256)
	assert.NotZero(t, n)
}

func TestGetRandomPositiveInt_Bounded(t *testing.T) {
	bound := big.NewInt(1000)
	n := GetRandomPositiveInt(bound)
	assert.True(t, n.Sign() >= 0)
	assert.True(t, n.Cmp(bound) < 0)
}

func TestIsSafePrime_KnownSafePrime(t *testing.T) {
	assert.True(t, IsSafePrime(big.NewInt(23))) // (23-1)/2 = 11, prime
}

func TestIsSafePrime_RejectsNonSafe(t *testing.T) {
	assert.False(t, IsSafePrime(big.NewInt(13))) // (13-1)/2 = 6, composite
}

func TestTrySafePrime_Roundtrip(t *testing.T) {
	sp, ok := TrySafePrime(big.NewInt(11)) // p = 23 is safe
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(11), sp.Q())
	assert.Equal(t, big.NewInt(23), sp.P())
}

func TestWorkerRand_BitLength(t *testing.T) {
	w := NewWorkerRand()
	n := w.BitLength(16)
	assert.True(t, n.BitLen() <= 16)
}
