package dlog

import "runtime"

// distinguishedBits is the default distinguished-point predicate: a walk
// position is distinguished once its bit length drops below this many
// bits. 40 matches the original rho/lambda implementations this package
// is grounded on and gives a reasonable rendezvous rate for the group
// sizes this toolkit targets.
const distinguishedBits = 40

type options struct {
	workers   int
	threshold int
}

// Option configures a parallel DLOG search.
type Option func(*options)

// WithWorkers overrides the default worker count (runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithDistinguishedBits overrides the distinguished-point bit threshold.
func WithDistinguishedBits(bits int) Option {
	return func(o *options) {
		if bits > 0 {
			o.threshold = bits
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		workers:   runtime.NumCPU(),
		threshold: distinguishedBits,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
