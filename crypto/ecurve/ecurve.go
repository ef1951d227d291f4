// Package ecurve implements the minimal elliptic-curve arithmetic Lenstra's
// ECM needs: a curve y^2 = x^3 + a*x + b over Z/nZ where n is the composite
// being factored, not a prime field. Point addition over a ring can fail —
// a slope denominator that shares a factor with n has no inverse — and that
// failure *is* the factor ECM is looking for.
//
// The source this package is grounded on overloads a point's z-coordinate
// to mean one of three things (identity, affine, failure-carrying-a-divisor).
// Rather than carry that forward, Add returns a small tagged-variant result
// so the three cases can't be confused with one another at the type level.
package ecurve

import (
	"math/big"

	"github.com/kukos-crypto/dlogtoolkit/common"
)

// Curve is y^2 = x^3 + A*x + B over Z/NZ.
type Curve struct {
	A, B, N *big.Int
}

// Point is an affine point, or the point at infinity when AtInfinity is
// true (in which case X and Y are meaningless and left nil).
type Point struct {
	X, Y       *big.Int
	AtInfinity bool
}

// Infinity is the curve's identity element.
func Infinity() Point {
	return Point{AtInfinity: true}
}

// Kind discriminates an AddResult.
type Kind int

const (
	KindAffine Kind = iota
	KindIdentity
	KindFactorFound
)

// AddResult is the tagged result of Add: exactly one of Point (KindAffine),
// nothing (KindIdentity), or Divisor (KindFactorFound) is meaningful,
// selected by Kind.
type AddResult struct {
	Kind    Kind
	Point   Point
	Divisor *big.Int
}

func affine(x, y *big.Int) AddResult {
	return AddResult{Kind: KindAffine, Point: Point{X: x, Y: y}}
}

func identity() AddResult {
	return AddResult{Kind: KindIdentity, Point: Infinity()}
}

func factorFound(divisor *big.Int) AddResult {
	return AddResult{Kind: KindFactorFound, Divisor: divisor}
}

// Add computes p + q on the curve. A failed modular inversion of the slope
// denominator surfaces as KindFactorFound carrying the non-invertible
// divisor; gcd(n, divisor) is a non-trivial factor of n.
func (c *Curve) Add(p, q Point) AddResult {
	if p.AtInfinity {
		return pointResult(q)
	}
	if q.AtInfinity {
		return pointResult(p)
	}

	mod := common.ModInt(c.N)

	var num, den *big.Int
	if new(big.Int).Mod(new(big.Int).Sub(p.X, q.X), c.N).Sign() == 0 {
		sum := mod.Add(p.Y, q.Y)
		if sum.Sign() == 0 {
			return identity()
		}
		// doubling: slope = (3x^2 + A) / (2y)
		num = mod.Add(mod.Mul(big.NewInt(3), mod.Mul(p.X, p.X)), c.A)
		den = mod.Mul(big.NewInt(2), p.Y)
	} else {
		num = mod.Sub(q.Y, p.Y)
		den = mod.Sub(q.X, p.X)
	}

	inv, ok := mod.Inverse(den)
	if !ok {
		return factorFound(new(big.Int).Set(den))
	}

	slope := mod.Mul(num, inv)
	x := mod.Sub(mod.Sub(mod.Mul(slope, slope), p.X), q.X)
	y := mod.Sub(mod.Mul(slope, mod.Sub(p.X, x)), p.Y)
	return affine(x, y)
}

func pointResult(p Point) AddResult {
	if p.AtInfinity {
		return identity()
	}
	return affine(p.X, p.Y)
}

// ScalarMul computes k*p via double-and-add, stopping the moment any
// intermediate addition finds a factor instead of continuing to multiply
// a meaningless result.
func (c *Curve) ScalarMul(k uint64, p Point) AddResult {
	result := identity()
	addend := p
	for k > 0 {
		if k&1 == 1 {
			result = c.Add(addendOf(result), addend)
			if result.Kind == KindFactorFound {
				return result
			}
		}
		k >>= 1
		if k == 0 {
			break
		}
		doubled := c.Add(addend, addend)
		if doubled.Kind == KindFactorFound {
			return doubled
		}
		addend = addendOf(doubled)
	}
	return result
}

func addendOf(r AddResult) Point {
	if r.Kind == KindIdentity {
		return Infinity()
	}
	return r.Point
}

// FromPoint builds a curve through p with a random coefficient A, solving
// for B so that p lies on the curve: B = y^2 - x^3 - A*x (mod n).
func FromPoint(p Point, a, n *big.Int) *Curve {
	mod := common.ModInt(n)
	x3 := mod.Mul(mod.Mul(p.X, p.X), p.X)
	b := mod.Sub(mod.Sub(mod.Mul(p.Y, p.Y), x3), mod.Mul(a, p.X))
	return &Curve{A: new(big.Int).Set(a), B: b, N: new(big.Int).Set(n)}
}
