package dlog

import "github.com/pkg/errors"

// ErrAlgebraicDeadEnd is returned by the sequential rho solver when the
// collision it found yields r ≡ 0 (mod q), the rare case where the
// discrete log cannot be recovered from that particular collision.
var ErrAlgebraicDeadEnd = errors.New("pollard rho: collision yielded a non-invertible r (algebraic dead end)")

// ErrInvalidSafePrime is returned by Rho and RhoParallel when p fails their
// safe-prime precondition (p itself not prime, or (p-1)/2 not prime).
var ErrInvalidSafePrime = errors.New("p is not a safe prime: (p-1)/2 must also be prime")

// ErrInvalidFactorization is returned by Pohlig-Hellman when the caller's
// claimed factorization of p-1 does not actually multiply out to p-1.
var ErrInvalidFactorization = errors.New("supplied factor list does not multiply to p-1")

// ErrEmptyCRTInput is returned by CRT when given no congruences to combine.
var ErrEmptyCRTInput = errors.New("crt: no congruences supplied")

// ErrCRTLengthMismatch is returned by CRT when the remainder and modulus
// slices have different lengths.
var ErrCRTLengthMismatch = errors.New("crt: remainders and moduli must have equal length")

// ErrCRTNotCoprime is returned by CRT when two moduli share a factor, so
// the required modular inverse does not exist.
var ErrCRTNotCoprime = errors.New("crt: moduli are not pairwise coprime")
