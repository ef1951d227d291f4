package dlog

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kukos-crypto/dlogtoolkit/common"
)

func TestPohlig_p251_g71_h210(t *testing.T) {
	p := big.NewInt(251)
	g := big.NewInt(71)
	h := big.NewInt(210)
	factors := []Factor{
		{Prime: big.NewInt(2), Exponent: big.NewInt(1)},
		{Prime: big.NewInt(5), Exponent: big.NewInt(3)},
	}

	require := assert.New(t)
	require.NoError(CheckFactorization(p, factors))

	x, err := Pohlig(context.Background(), g, h, p, factors)
	require.NoError(err)
	require.Equal(h, common.ModInt(p).Exp(g, x))
}

func TestCheckFactorization_RejectsWrongProduct(t *testing.T) {
	p := big.NewInt(251)
	factors := []Factor{
		{Prime: big.NewInt(2), Exponent: big.NewInt(1)},
		{Prime: big.NewInt(5), Exponent: big.NewInt(2)},
	}
	err := CheckFactorization(p, factors)
	assert.ErrorIs(t, err, ErrInvalidFactorization)
}

func TestRefineOrder_DividesTrueOrder(t *testing.T) {
	p := big.NewInt(251)
	g := big.NewInt(71)
	factors := []Factor{
		{Prime: big.NewInt(2), Exponent: big.NewInt(1)},
		{Prime: big.NewInt(5), Exponent: big.NewInt(3)},
	}

	refined := refineOrder(g, p, factors)

	ord := big.NewInt(1)
	for _, f := range refined {
		ord.Mul(ord, primePower(f))
	}

	modP := common.ModInt(p)
	assert.Equal(t, big.NewInt(1), modP.Exp(g, ord))
}
