package dlog

import (
	"context"
	"math/big"

	"github.com/kukos-crypto/dlogtoolkit/common"
)

// Factor is one (prime, exponent) term of a claimed factorization of p-1,
// the external collaborator Pohlig-Hellman needs to decompose the group.
type Factor struct {
	Prime    *big.Int
	Exponent *big.Int
}

// refineOrder walks the factor list once per factor, peeling off powers of
// fᵢ that g does not actually need: while g^(ord/fᵢ) ≡ 1 (mod p), ord is
// not yet the true order of g, so divide it by fᵢ and decrement eᵢ.
//
// If every factor peels all the way down and ord collapses to 1 (g is the
// identity's own subgroup generator), the original algorithm this is
// grounded on falls back to ord = f_last^1 rather than failing outright;
// that fallback is carried forward here unchanged.
func refineOrder(g, p *big.Int, factors []Factor) []Factor {
	modP := common.ModInt(p)
	ord := new(big.Int).Sub(p, big.NewInt(1))
	refined := make([]Factor, len(factors))
	for i, f := range factors {
		refined[i] = Factor{Prime: new(big.Int).Set(f.Prime), Exponent: new(big.Int).Set(f.Exponent)}
	}

	for i := range refined {
		for refined[i].Exponent.Sign() > 0 {
			q := new(big.Int).Div(ord, refined[i].Prime)
			if modP.Exp(g, q).Cmp(one) != 0 {
				break
			}
			ord.Set(q)
			refined[i].Exponent.Sub(refined[i].Exponent, big.NewInt(1))
		}
	}

	compacted := refined[:0]
	for _, f := range refined {
		if f.Exponent.Sign() != 0 {
			compacted = append(compacted, f)
		}
	}

	if ord.Cmp(one) == 0 && len(compacted) < len(refined) {
		last := refined[len(refined)-1]
		last.Exponent = big.NewInt(1)
		compacted = append(compacted, last)
	}

	return compacted
}

func primePower(f Factor) *big.Int {
	return new(big.Int).Exp(f.Prime, f.Exponent, nil)
}

// solveDigits recovers x in [0, f^e) such that G^x ≡ tgt (mod p), one base-f
// digit at a time: each digit xᵢ is itself a discrete log in the order-f
// subgroup generated by G^(f^(e-1)), solved by the lambda core.
func solveDigits(ctx context.Context, g, h, p, f, e *big.Int, opts []Option) (*big.Int, error) {
	modP := common.ModInt(p)

	lessE := new(big.Int).Sub(e, big.NewInt(1))
	bigG := modP.Exp(g, modP.Exp(f, lessE))

	gInv, ok := modP.Inverse(g)
	if !ok {
		return nil, ErrAlgebraicDeadEnd
	}

	x := big.NewInt(0)
	fi := big.NewInt(1)

	for i := big.NewInt(1); i.Cmp(e) <= 0; i.Add(i, one) {
		// tgt = (h * g^-x)^(f^(e-i)) mod p
		tgt := modP.Mul(modP.Exp(gInv, x), h)
		remaining := new(big.Int).Sub(e, i)
		tgt = modP.Exp(tgt, modP.Exp(f, remaining))

		digitOrder := new(big.Int).Exp(f, i, nil)
		xi, err := LambdaInterval(ctx, bigG, tgt, p, big.NewInt(0), new(big.Int).Sub(digitOrder, one), opts...)
		if err != nil {
			return nil, err
		}
		xi = new(big.Int).Mod(xi, digitOrder)

		x.Add(x, new(big.Int).Mul(xi, fi))
		fi.Mul(fi, f)
	}

	return x, nil
}

// Pohlig solves g^x ≡ h (mod p) by reducing to one discrete log per
// prime-power factor of ord(g) and recombining the digits with CRT.
// factors must multiply out to p-1; it is the caller's job (and the
// CLI surface's) to have checked that before calling in.
func Pohlig(ctx context.Context, g, h, p *big.Int, factors []Factor, opts ...Option) (*big.Int, error) {
	refined := refineOrder(g, p, factors)

	ord := big.NewInt(1)
	for _, f := range refined {
		ord.Mul(ord, primePower(f))
	}

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	if ord.Cmp(pMinus1) != 0 {
		last := refined[len(refined)-1]
		q := primePower(last)
		modP := common.ModInt(p)
		g = modP.Exp(g, q)
		h = modP.Exp(h, q)
	}

	xs := make([]*big.Int, len(refined))
	ns := make([]*big.Int, len(refined))
	modP := common.ModInt(p)

	for i, f := range refined {
		pe := primePower(f)
		exp := new(big.Int).Div(pMinus1, pe)
		gPrime := modP.Exp(g, exp)
		hPrime := modP.Exp(h, exp)

		xi, err := solveDigits(ctx, gPrime, hPrime, p, f.Prime, f.Exponent, opts)
		if err != nil {
			return nil, err
		}
		xs[i] = xi
		ns[i] = pe
	}

	x, err := CRT(xs, ns)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Mod(x, ord), nil
}

// CheckFactorization reports whether ∏ factors[i].Prime^factors[i].Exponent
// equals p-1, the precondition Pohlig-Hellman's caller must satisfy.
func CheckFactorization(p *big.Int, factors []Factor) error {
	product := big.NewInt(1)
	for _, f := range factors {
		product.Mul(product, primePower(f))
	}
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	if product.Cmp(pMinus1) != 0 {
		return ErrInvalidFactorization
	}
	return nil
}
