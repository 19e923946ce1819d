// Package lcg implements a deterministic 64-bit stream generator based on
// the linear congruential recurrence with Knuth's MMIX constants.
//
// The same recurrence is exposed two ways: as a mutable Handle owning its
// state, and as pure state-threading transitions in the pure package.
// Both produce bit-identical streams for equal seeds.
package lcg

// Knuth's MMIX constants.
const (
	MultiplierA uint64 = 6364136223846793005
	IncrementC  uint64 = 1442695040888963407
)

// Advance applies the recurrence once. 64-bit wraparound is part of the
// contract, not an overflow.
func Advance(state uint64) uint64 {
	return state*MultiplierA + IncrementC
}
