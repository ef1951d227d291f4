package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJumpIndexHash_Deterministic(t *testing.T) {
	pos := big.NewInt(12345)
	a := JumpIndexHash(pos, 16)
	b := JumpIndexHash(pos, 16)
	assert.Equal(t, a, b)
	assert.True(t, a < 16)
}

func TestJumpIndexHash_DiffersByPosition(t *testing.T) {
	a := JumpIndexHash(big.NewInt(1), 1<<20)
	b := JumpIndexHash(big.NewInt(2), 1<<20)
	assert.NotEqual(t, a, b)
}

func TestSubgroupHash_Deterministic(t *testing.T) {
	a := SubgroupHash(big.NewInt(1), big.NewInt(2))
	b := SubgroupHash(big.NewInt(1), big.NewInt(2))
	assert.Equal(t, 0, a.Cmp(b))
}

func TestSubgroupHash_OrderSensitive(t *testing.T) {
	a := SubgroupHash(big.NewInt(1), big.NewInt(2))
	b := SubgroupHash(big.NewInt(2), big.NewInt(1))
	assert.NotEqual(t, 0, a.Cmp(b))
}
