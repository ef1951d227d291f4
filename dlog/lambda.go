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

type kangarooKind int

const (
	kangarooTame kangarooKind = iota
	kangarooWild
)

// kangarooTriple is the shared-memory collision record Pollard's lambda
// workers exchange: which kind of kangaroo left it, how far it has
// travelled, and where it currently stands.
type kangarooTriple struct {
	kind     kangarooKind
	distance *big.Int
	position *big.Int
}

func (t kangarooTriple) Key() *big.Int { return t.position }

// maxJumps returns the largest r such that (2^r - 1)/r does not exceed
// beta, the mean-spacing parameter: the number of distinct jump sizes
// the kangaroo walk draws from.
func maxJumps(beta *big.Int) uint64 {
	r := uint64(1)
	for {
		num := new(big.Int).Lsh(big.NewInt(1), uint(r))
		num.Sub(num, big.NewInt(1))
		res := new(big.Int).Div(num, new(big.Int).SetUint64(r))
		if res.Cmp(beta) > 0 {
			if r > 1 {
				return r - 1
			}
			return 1
		}
		r++
	}
}

// Lambda solves g^x ≡ h (mod p) with Pollard's parallel kangaroo algorithm
// over the default interval [0, p-1], reducing the result mod p-1.
func Lambda(ctx context.Context, g, h, p *big.Int, opts ...Option) (*big.Int, error) {
	ordG := new(big.Int).Sub(p, big.NewInt(1))
	x, err := LambdaInterval(ctx, g, h, p, big.NewInt(0), ordG, opts...)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Mod(x, ordG), nil
}

// LambdaInterval solves g^x ≡ h (mod p) for x known to lie in [lo, hi] and
// returns the raw combined tame/wild distance, unreduced — callers that
// know the actual order of g (Pohlig-Hellman's subproblem solver, which
// searches a prime-power subgroup rather than the full group) are
// responsible for reducing the result mod that order themselves.
func LambdaInterval(ctx context.Context, g, h, p, lo, hi *big.Int, opts ...Option) (*big.Int, error) {
	if g.Cmp(h) == 0 {
		return big.NewInt(1), nil
	}

	o := buildOptions(opts)
	// A collision needs at least one tame (even index) and one wild (odd
	// index) kangaroo, so the pool never runs with fewer than two workers.
	if o.workers < 2 {
		o.workers = 2
	}
	nproc := int64(o.workers)
	modP := common.ModInt(p)

	// beta = nproc * sqrt(hi - lo) / 4
	beta := new(big.Int).Sub(hi, lo)
	beta.Sqrt(beta)
	beta.Mul(beta, big.NewInt(nproc))
	beta.Div(beta, big.NewInt(4))
	if beta.Sign() == 0 {
		beta.SetInt64(1)
	}

	// v = beta / (nproc / 2), the initial-offset stride.
	halfProc := nproc / 2
	if halfProc == 0 {
		halfProc = 1
	}
	v := new(big.Int).Div(beta, big.NewInt(halfProc))
	if v.Sign() == 0 {
		v.SetInt64(1)
	}

	r := maxJumps(beta)

	dists := make([]*big.Int, r)
	jumps := make([]*big.Int, r)
	for i := uint64(0); i < r; i++ {
		dists[i] = new(big.Int).Lsh(big.NewInt(1), uint(i))
		jumps[i] = modP.Exp(g, dists[i])
	}

	mid := new(big.Int).Add(lo, hi)
	mid.Rsh(mid, 1)

	dps := collision.New[kangarooTriple]()
	var finished atomic.Bool
	var result *big.Int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for k := 0; k < o.workers; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()

			kind := kangarooTame
			if k%2 == 1 {
				kind = kangarooWild
			}

			// d_k = ceil((k+2)/2) * v
			distance := new(big.Int).Mul(big.NewInt(int64(k+3)/2), v)

			var pos *big.Int
			if kind == kangarooTame {
				pos = modP.Exp(g, new(big.Int).Add(mid, distance))
			} else {
				pos = modP.Mul(h, modP.Exp(g, distance))
			}

			for !finished.Load() {
				select {
				case <-ctx.Done():
					return
				default:
				}

				idx := common.JumpIndexHash(pos, r)
				pos = modP.Mul(pos, jumps[idx])
				distance = new(big.Int).Add(distance, dists[idx])

				if pos.BitLen() >= o.threshold {
					continue
				}

				mu.Lock()
				if finished.Load() {
					mu.Unlock()
					return
				}
				t := kangarooTriple{kind: kind, distance: new(big.Int).Set(distance), position: new(big.Int).Set(pos)}
				existing, found := dps.FindOrInsert(t.position, t)
				if found && existing.kind != t.kind {
					common.Logger.Debugf("lambda: tame/wild collision at distinguished point (bitlen %d)", t.position.BitLen())
					tame, wild := t, existing
					if t.kind == kangarooWild {
						tame, wild = existing, t
					}
					x := new(big.Int).Add(mid, tame.distance)
					x.Sub(x, wild.distance)
					result = x
					finished.Store(true)
				}
				mu.Unlock()
			}
		}(k)
	}
	wg.Wait()

	if result == nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "pollard lambda: cancelled before a collision resolved")
		}
		return nil, errors.New("pollard lambda: exhausted interval without a tame/wild collision")
	}

	return result, nil
}
