package dlog

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kukos-crypto/dlogtoolkit/common"
)

func TestRho_g2_h16_p23(t *testing.T) {
	g := big.NewInt(2)
	h := big.NewInt(16) // 2^4 mod 23
	p := big.NewInt(23)

	x, err := Rho(g, h, p)
	assert.NoError(t, err)
	assert.Equal(t, h, common.ModInt(p).Exp(g, x))
}

func TestRho_g5_h3_p1019(t *testing.T) {
	g := big.NewInt(5)
	h := big.NewInt(3)
	p := big.NewInt(1019)

	x, err := Rho(g, h, p)
	assert.NoError(t, err)
	assert.Equal(t, h, common.ModInt(p).Exp(g, x))
}

func TestRho_RejectsNonSafePrime(t *testing.T) {
	_, err := Rho(big.NewInt(2), big.NewInt(3), big.NewInt(12))
	assert.ErrorIs(t, err, ErrInvalidSafePrime)
}

func TestRhoParallel_g2_h16_p23(t *testing.T) {
	g := big.NewInt(2)
	h := big.NewInt(16) // 2^4 mod 23
	p := big.NewInt(23)

	x, err := RhoParallel(context.Background(), g, h, p, WithWorkers(4))
	assert.NoError(t, err)
	assert.Equal(t, h, common.ModInt(p).Exp(g, x))
}

func TestRhoParallel_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := big.NewInt(23)
	_, err := RhoParallel(ctx, big.NewInt(2), big.NewInt(5), p, WithWorkers(2))
	assert.Error(t, err)
}
