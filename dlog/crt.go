package dlog

import "math/big"

// congruence is one (remainder, modulus) pair being combined by CRT.
type congruence struct {
	r, n *big.Int
}

// CRT combines the congruences x ≡ remainders[i] (mod moduli[i]) into the
// unique x (mod ∏ moduli[i]) guaranteed by the Chinese Remainder Theorem.
// The moduli must be pairwise coprime; Pohlig-Hellman's prime-power digits
// always satisfy this since they come from distinct primes.
func CRT(remainders, moduli []*big.Int) (*big.Int, error) {
	if len(remainders) == 0 || len(moduli) == 0 {
		return nil, ErrEmptyCRTInput
	}
	if len(remainders) != len(moduli) {
		return nil, ErrCRTLengthMismatch
	}

	cs := make([]congruence, len(remainders))
	for i := range remainders {
		cs[i] = congruence{r: new(big.Int).Set(remainders[i]), n: new(big.Int).Set(moduli[i])}
	}

	acc := cs[0]
	for _, c := range cs[1:] {
		combined, err := combine(acc, c)
		if err != nil {
			return nil, err
		}
		acc = combined
	}
	return acc.r, nil
}

// combine merges two congruences x ≡ a.r (mod a.n) and x ≡ b.r (mod b.n)
// into a single congruence mod lcm(a.n, b.n) = a.n*b.n (the moduli are
// assumed coprime).
func combine(a, b congruence) (congruence, error) {
	g := new(big.Int).GCD(nil, nil, a.n, b.n)
	if g.Cmp(one) != 0 {
		return congruence{}, ErrCRTNotCoprime
	}

	n := new(big.Int).Mul(a.n, b.n)

	// x = a.r + a.n * ((b.r - a.r) * m1 mod b.n), with m1 = a.n^-1 mod b.n
	m1 := new(big.Int).ModInverse(a.n, b.n)
	if m1 == nil {
		return congruence{}, ErrCRTNotCoprime
	}

	diff := new(big.Int).Sub(b.r, a.r)
	t := new(big.Int).Mul(diff, m1)
	t.Mod(t, b.n)

	x := new(big.Int).Mul(t, a.n)
	x.Add(x, a.r)
	x.Mod(x, n)

	return congruence{r: x, n: n}, nil
}

var one = big.NewInt(1)
