package dlog

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/kukos-crypto/dlogtoolkit/common"
	"github.com/kukos-crypto/dlogtoolkit/internal/collision"
)

// subgroup classifies a walk position into one of the three partitions
// Pollard's walk function uses to decide its next step.
func subgroup(x *big.Int) int64 {
	return new(big.Int).Mod(x, big.NewInt(3)).Int64()
}

// step advances (x, a, b) by exactly one iteration of the shared rho walk
// function:
//
//	x in S0 -> x <- x*g, a <- a+1
//	x in S1 -> x <- x*h,          b <- b+1
//	x in S2 -> x <- x^2, a <- 2a, b <- 2b
func step(x, a, b, g, h, p, q *big.Int) {
	modP := common.ModInt(p)
	modQ := common.ModInt(q)
	switch subgroup(x) {
	case 0:
		x.Set(modP.Mul(x, g))
		a.Set(modQ.Add(a, big.NewInt(1)))
	case 1:
		x.Set(modP.Mul(x, h))
		b.Set(modQ.Add(b, big.NewInt(1)))
	default:
		x.Set(modP.Mul(x, x))
		a.Set(modQ.Add(a, a))
		b.Set(modQ.Add(b, b))
	}
}

// Rho solves g^x ≡ h (mod p) with a sequential Floyd-cycle Pollard rho
// search. p must be a safe prime: q = (p-1)/2 must also be prime.
func Rho(g, h, p *big.Int) (*big.Int, error) {
	if !common.IsSafePrime(p) {
		return nil, ErrInvalidSafePrime
	}
	q := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	modP := common.ModInt(p)

	x, a, b := modP.Mul(g, h), big.NewInt(1), big.NewInt(1)
	X, A, B := new(big.Int).Set(x), big.NewInt(1), big.NewInt(1)

	for i := new(big.Int); i.Cmp(p) < 0; i.Add(i, big.NewInt(1)) {
		step(x, a, b, g, h, p, q)
		step(X, A, B, g, h, p, q)
		step(X, A, B, g, h, p, q)

		if x.Cmp(X) == 0 {
			break
		}
	}

	modQ := common.ModInt(q)
	r := modQ.Sub(b, B)
	if r.Sign() == 0 {
		return nil, ErrAlgebraicDeadEnd
	}
	rInv, ok := modQ.Inverse(r)
	if !ok {
		return nil, ErrAlgebraicDeadEnd
	}
	return modQ.Mul(rInv, modQ.Sub(A, a)), nil
}

// rhoTriple is the shared-memory collision record described by the
// source's Pollard_triple: a walker's position and the exponents (a, b)
// of g and h such that x ≡ g^a · h^b (mod p).
type rhoTriple struct {
	x, a, b *big.Int
}

func (t rhoTriple) Key() *big.Int { return t.x }

// RhoParallel solves g^x ≡ h (mod p) using a pool of goroutines that seed
// independent random walks and rendezvous through a shared distinguished-
// point set. Workers poll ctx for cancellation between distinguished-point
// checks in addition to the internal termination flag.
func RhoParallel(ctx context.Context, g, h, p *big.Int, opts ...Option) (*big.Int, error) {
	if !common.IsSafePrime(p) {
		return nil, ErrInvalidSafePrime
	}
	o := buildOptions(opts)
	q := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	modP := common.ModInt(p)
	modQ := common.ModInt(q)

	dps := collision.New[rhoTriple]()
	var finished atomic.Bool
	var result *big.Int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := common.NewWorkerRand()

			for !finished.Load() {
				select {
				case <-ctx.Done():
					return
				default:
				}

				a := new(big.Int).Mod(rng.BitLength(common.RhoRandBits), q)
				b := new(big.Int).Mod(rng.BitLength(common.RhoRandBits), q)
				x := modP.Mul(modP.Exp(g, a), modP.Exp(h, b))

				for x.BitLen() >= o.threshold {
					if finished.Load() {
						return
					}
					step(x, a, b, g, h, p, q)
				}

				mu.Lock()
				if finished.Load() {
					mu.Unlock()
					return
				}
				t := rhoTriple{x: new(big.Int).Set(x), a: new(big.Int).Set(a), b: new(big.Int).Set(b)}
				existing, found := dps.FindOrInsert(t.x, t)
				if found {
					common.Logger.Debugf("rho: collision at distinguished point (bitlen %d)", t.x.BitLen())
					r := modQ.Sub(t.b, existing.b)
					if r.Sign() != 0 {
						if rInv, ok := modQ.Inverse(r); ok {
							result = modQ.Mul(rInv, modQ.Sub(existing.a, t.a))
							finished.Store(true)
						}
					}
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if result == nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "pollard rho parallel: cancelled before a collision resolved")
		}
		return nil, ErrAlgebraicDeadEnd
	}
	return result, nil
}
