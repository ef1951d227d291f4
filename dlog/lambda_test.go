package dlog

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kukos-crypto/dlogtoolkit/common"
)

func TestLambda_g3_h8_p47(t *testing.T) {
	g := big.NewInt(3)
	h := big.NewInt(8) // 3^5 mod 47
	p := big.NewInt(47)

	x, err := Lambda(context.Background(), g, h, p, WithWorkers(4))
	assert.NoError(t, err)
	assert.Equal(t, h, common.ModInt(p).Exp(g, x))
}

func TestLambdaInterval_NarrowsSearch(t *testing.T) {
	g := big.NewInt(3)
	h := big.NewInt(8) // 3^5 mod 47
	p := big.NewInt(47)

	x, err := LambdaInterval(context.Background(), g, h, p, big.NewInt(0), big.NewInt(45), WithWorkers(4))
	assert.NoError(t, err)
	assert.Equal(t, h, common.ModInt(p).Exp(g, new(big.Int).Mod(x, big.NewInt(46))))
}

func TestLambda_EarlyExitWhenGEqualsH(t *testing.T) {
	g := big.NewInt(7)
	p := big.NewInt(23)

	x, err := Lambda(context.Background(), g, g, p)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(1), x)
}

func TestMaxJumps_Monotonic(t *testing.T) {
	small := maxJumps(big.NewInt(4))
	large := maxJumps(big.NewInt(4096))
	assert.LessOrEqual(t, small, large)
}
