package chain

import "math/big"

// MaxTarget is 2^256: one above any 256-bit hash, so it accepts every block.
var MaxTarget = new(big.Int).Lsh(big.NewInt(1), 256)

// TargetFromBits derives a difficulty target requiring bits leading zero bits
// in the block hash. TargetFromBits(0) == MaxTarget.
func TargetFromBits(bits uint) *big.Int {
	if bits > 256 {
		bits = 256
	}
	return new(big.Int).Lsh(big.NewInt(1), 256-bits)
}

// CheckDifficulty is the proof-of-work acceptance predicate: the hash read as
// a big integer must be strictly below the target.
func CheckDifficulty(h Hash, target *big.Int) bool {
	if target == nil {
		return false
	}
	return new(big.Int).SetBytes(h).Cmp(target) < 0
}
