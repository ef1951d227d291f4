package common

import (
	"math/big"
)

// modInt is a *big.Int that performs all of its arithmetic with modular
// reduction against a fixed modulus.
type modInt big.Int

func ModInt(mod *big.Int) *modInt {
	return (*modInt)(mod)
}

func (mi *modInt) Add(x, y *big.Int) *big.Int {
	i := new(big.Int).Add(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Sub(x, y *big.Int) *big.Int {
	i := new(big.Int).Sub(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Mul(x, y *big.Int) *big.Int {
	i := new(big.Int).Mul(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Exp(x, y *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, mi.i())
}

// Inverse returns (x^-1 mod m, true) or (nil, false) when x shares a
// common factor with m — the algebraic dead-end every caller of modular
// inversion (rho's r, CRT, ECM's slope denominator) must handle explicitly.
func (mi *modInt) Inverse(x *big.Int) (*big.Int, bool) {
	inv := new(big.Int).ModInverse(x, mi.i())
	if inv == nil {
		return nil, false
	}
	return inv, true
}

func (mi *modInt) i() *big.Int {
	return (*big.Int)(mi)
}

// IsInInterval reports whether 0 <= b < bound.
func IsInInterval(b, bound *big.Int) bool {
	return b.Sign() >= 0 && b.Cmp(bound) < 0
}
