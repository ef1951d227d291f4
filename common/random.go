package common

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"math/big"

	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 8192
	primeTestRounds         = 30

	// RhoRandBits bounds the bit-range parallel rho workers draw their
	// fresh (a, b) restart coefficients from.
	RhoRandBits = 16
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// MustGetRandomInt panics if it is unable to gather entropy from
// crypto/rand or when bits is <= 0.
func MustGetRandomInt(bits int) *big.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(errors.Errorf("MustGetRandomInt: bits should be positive, non-zero and less than %d", mustGetRandomIntMaxBits))
	}
	max := new(big.Int).Exp(two, big.NewInt(int64(bits)), nil)
	max.Sub(max, one)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt"))
	}
	return n
}

// GetRandomPositiveInt returns a uniform value in [0, lessThan).
func GetRandomPositiveInt(lessThan *big.Int) *big.Int {
	if lessThan == nil || lessThan.Sign() <= 0 {
		return nil
	}
	for {
		try := MustGetRandomInt(lessThan.BitLen())
		if try.Cmp(lessThan) < 0 {
			return try
		}
	}
}

// GetRandomPrimeInt returns a probable prime of the given bit length.
func GetRandomPrimeInt(bits int) *big.Int {
	if bits <= 0 {
		return nil
	}
	p, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		for {
			p = MustGetRandomInt(bits)
			if p.ProbablyPrime(primeTestRounds) {
				return p
			}
		}
	}
	return p
}

// SafePrime pairs a Sophie Germain prime q with its safe prime p = 2q+1.
type SafePrime struct {
	q, p *big.Int
}

func (s *SafePrime) Q() *big.Int { return new(big.Int).Set(s.q) }
func (s *SafePrime) P() *big.Int { return new(big.Int).Set(s.p) }

// TrySafePrime builds a SafePrime from a candidate Sophie Germain prime q,
// validating that both q and p = 2q+1 are probable primes.
func TrySafePrime(q *big.Int) (*SafePrime, bool) {
	if q == nil || !q.ProbablyPrime(primeTestRounds) {
		return nil, false
	}
	p := new(big.Int).Mul(q, two)
	p.Add(p, one)
	if !p.ProbablyPrime(primeTestRounds) {
		return nil, false
	}
	return &SafePrime{q: new(big.Int).Set(q), p: p}, true
}

// IsSafePrime reports whether p is a probable safe prime, i.e. whether
// q = (p-1)/2 is also a probable prime.
func IsSafePrime(p *big.Int) bool {
	if p == nil || !p.ProbablyPrime(primeTestRounds) {
		return false
	}
	q := new(big.Int).Sub(p, one)
	q.Div(q, two)
	return q.ProbablyPrime(primeTestRounds)
}

// GetRandomSafePrime draws random Sophie Germain primes of the requested
// bit length until one also yields a safe prime p = 2q+1.
func GetRandomSafePrime(bits int) *SafePrime {
	for {
		if sp, ok := TrySafePrime(GetRandomPrimeInt(bits)); ok {
			return sp
		}
	}
}

// WorkerRand is a pseudorandom source scoped to a single goroutine's
// lifetime. Algorithms that sample many candidate (a, b) pairs in a
// tight inner loop create exactly one of these per worker rather than
// re-seeding (and paying a crypto/rand syscall) on every iteration;
// the seed itself still comes from crypto/rand.
type WorkerRand struct {
	r *mrand.Rand
}

// NewWorkerRand seeds a new worker-local generator from crypto/rand.
func NewWorkerRand() *WorkerRand {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(errors.Wrap(err, "rand.Read failure in NewWorkerRand"))
	}
	return &WorkerRand{r: mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))}
}

// BitLength returns a uniform value in [0, 2^bits).
func (w *WorkerRand) BitLength(bits int) *big.Int {
	nBytes := (bits + 7) / 8
	buf := make([]byte, nBytes)
	w.r.Read(buf) //nolint:errcheck // math/rand.Rand.Read never errors
	v := new(big.Int).SetBytes(buf)
	excess := nBytes*8 - bits
	if excess > 0 {
		v.Rsh(v, uint(excess))
	}
	return v
}

// LessThan returns a uniform value in [0, n).
func (w *WorkerRand) LessThan(n *big.Int) *big.Int {
	if n == nil || n.Sign() <= 0 {
		return nil
	}
	for {
		v := w.BitLength(n.BitLen())
		if v.Cmp(n) < 0 {
			return v
		}
	}
}
