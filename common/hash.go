package common

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// JumpIndexHash reduces a group element to a deterministic, uniform,
// position-stable index in [0, r). The kangaroo walk in dlog.Lambda uses
// it to pick which of the r precomputed jump sizes to take next; any
// deterministic reduction with those properties satisfies the contract,
// this one just hashes the big-endian encoding of pos with SHA3-256
// instead of the decimal string one classic implementation used.
func JumpIndexHash(pos *big.Int, r uint64) uint64 {
	digest := sha3.Sum256(pos.Bytes())
	v := new(big.Int).SetBytes(digest[:])
	mod := new(big.Int).SetUint64(r)
	return v.Mod(v, mod).Uint64()
}

// SubgroupHash folds a sequence of big integers, in order, into one
// SHA3-256 digest. No algorithm in this module calls it.
func SubgroupHash(in ...*big.Int) *big.Int {
	state := sha3.New256()
	for _, n := range in {
		state.Write(n.Bytes())
		state.Write([]byte{0})
	}
	return new(big.Int).SetBytes(state.Sum(nil))
}
