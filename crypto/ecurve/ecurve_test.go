package ecurve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pt(x, y int64) Point {
	return Point{X: big.NewInt(x), Y: big.NewInt(y)}
}

func TestAdd_Doubling(t *testing.T) {
	c := &Curve{A: big.NewInt(2), B: big.NewInt(3), N: big.NewInt(97)}
	p := pt(0, 10)

	res := c.Add(p, p)
	assert.Equal(t, KindAffine, res.Kind)
	assert.Equal(t, big.NewInt(65), res.Point.X)
	assert.Equal(t, big.NewInt(32), res.Point.Y)
}

func TestScalarMul_MatchesRepeatedAddition(t *testing.T) {
	c := &Curve{A: big.NewInt(2), B: big.NewInt(3), N: big.NewInt(97)}
	p := pt(0, 10)

	res := c.ScalarMul(5, p)
	assert.Equal(t, KindAffine, res.Kind)
	assert.Equal(t, big.NewInt(88), res.Point.X)
	assert.Equal(t, big.NewInt(56), res.Point.Y)
}

func TestAdd_IdentityIsNeutral(t *testing.T) {
	c := &Curve{A: big.NewInt(2), B: big.NewInt(3), N: big.NewInt(97)}
	p := pt(0, 10)

	res := c.Add(p, Infinity())
	assert.Equal(t, KindAffine, res.Kind)
	assert.Equal(t, p.X, res.Point.X)
	assert.Equal(t, p.Y, res.Point.Y)
}

func TestAdd_InverseYieldsIdentity(t *testing.T) {
	c := &Curve{A: big.NewInt(2), B: big.NewInt(3), N: big.NewInt(97)}
	p := pt(0, 10)
	negP := pt(0, 97-10)

	res := c.Add(p, negP)
	assert.Equal(t, KindIdentity, res.Kind)
}

func TestAdd_NonInvertibleDenominatorYieldsFactor(t *testing.T) {
	// n = 35 = 5*7; craft two points whose slope denominator shares a
	// factor with n so the inversion fails and a divisor surfaces.
	c := &Curve{A: big.NewInt(1), B: big.NewInt(1), N: big.NewInt(35)}
	p := pt(1, 3)
	q := pt(6, 3)

	res := c.Add(p, q)
	assert.Equal(t, KindFactorFound, res.Kind)
	g := new(big.Int).GCD(nil, nil, big.NewInt(35), res.Divisor)
	assert.True(t, g.Cmp(big.NewInt(1)) != 0)
}

func TestFromPoint_PointLiesOnCurve(t *testing.T) {
	n := big.NewInt(97)
	p := pt(0, 10)
	a := big.NewInt(2)

	c := FromPoint(p, a, n)
	assert.Equal(t, big.NewInt(3), c.B)
}
