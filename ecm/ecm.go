// Package ecm implements Lenstra's elliptic-curve integer factorization
// method: pick a random curve over Z/nZ, multiply a random point by
// increasing prime powers, and hope the group order of the point's "curve"
// modulo one of n's hidden prime factors divides evenly while the order
// modulo another does not — the resulting non-invertible denominator
// exposes a nontrivial factor of n via gcd.
package ecm

import (
	"context"
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/otiai10/primes"
	"github.com/pkg/errors"

	"github.com/kukos-crypto/dlogtoolkit/common"
	"github.com/kukos-crypto/dlogtoolkit/crypto/ecurve"
)

// ErrNoFactorFound is returned when every prime in the sieve up to limit
// has been exhausted without a point collapse revealing a factor.
var ErrNoFactorFound = errors.New("ecm: exhausted prime bound without finding a factor")

// Factor attempts to find one nontrivial factor of the composite n using a
// single random curve, multiplying a random starting point by each prime
// below limit raised to increasing powers until a point operation hits a
// non-invertible denominator.
func Factor(ctx context.Context, n *big.Int, limit uint64) (*big.Int, error) {
	if n.ProbablyPrime(30) {
		return nil, errors.New("ecm: n is prime, nothing to factor")
	}

	point := randomPoint(n)
	a := common.GetRandomPositiveInt(n)
	curve := ecurve.FromPoint(point, a, n)

	for _, prime := range primes.Until(int64(limit)).List() {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "ecm: cancelled before a factor was found")
		default:
		}

		p := new(big.Int).SetInt64(prime)
		for p.Cmp(new(big.Int).SetUint64(limit)) < 0 {
			res := curve.ScalarMul(uint64(prime), point)
			if res.Kind == ecurve.KindFactorFound {
				g := new(big.Int).GCD(nil, nil, n, res.Divisor)
				if g.Cmp(one) != 0 && g.Cmp(n) != 0 {
					return g, nil
				}
				return nil, ErrNoFactorFound
			}
			point = res.Point
			if res.Kind == ecurve.KindIdentity {
				break
			}
			p.Mul(p, new(big.Int).SetInt64(prime))
		}
	}

	return nil, ErrNoFactorFound
}

// FactorRetry repeats Factor with fresh random curves until it succeeds or
// attempts is exhausted: a single curve's group order can happen to share
// no small factor with n, so a production caller retries with new ones
// rather than treating one failed curve as a final verdict.
func FactorRetry(ctx context.Context, n *big.Int, limit uint64, attempts int) (*big.Int, error) {
	var failures *multierror.Error
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "ecm: cancelled during retry loop")
		default:
		}
		f, err := Factor(ctx, n, limit)
		if err == nil {
			return f, nil
		}
		failures = multierror.Append(failures, err)
		common.Logger.Debugf("ecm: curve %d/%d found no factor (%v), retrying", i+1, attempts, err)
	}
	return nil, errors.Wrap(failures.ErrorOrNil(), "ecm: all curve attempts exhausted")
}

func randomPoint(n *big.Int) ecurve.Point {
	x := common.GetRandomPositiveInt(n)
	y := common.GetRandomPositiveInt(n)
	return ecurve.Point{X: x, Y: y}
}

var one = big.NewInt(1)
