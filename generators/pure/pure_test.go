package pure

import (
	"github.com/fernandosanchezjr/detstream/generators/lcg"
	"testing"
)

const testSeed = 17

// Sum of the first three outputs for seed 17, mod 2^64.
const seed17Sum3 uint64 = 0xf9d8c354ac99ed08

func TestNextUint64_EmitsPreAdvanceState(t *testing.T) {
	var step = NextUint64(State(testSeed))
	if step.Value != testSeed {
		t.Fatalf("value must be the pre-advance state: %016x", step.Value)
	}
	if step.State != State(lcg.Advance(testSeed)) {
		t.Fatalf("state must be the advanced value: %016x", step.State)
	}
}

func TestNextUint64_MatchesHandle(t *testing.T) {
	var h = lcg.New[lcg.Untagged](testSeed)
	var s = State(testSeed)
	for i := 0; i < 1024; i++ {
		var step = NextUint64(s)
		s = step.State
		if step.Value != h.Next() {
			t.Fatal("modes diverged at step", i)
		}
	}
}

func TestThen_ThreadsState(t *testing.T) {
	var both = Then[State, uint64, [2]uint64](NextUint64, func(first uint64) Transition[State, [2]uint64] {
		return Map[State, uint64, [2]uint64](NextUint64, func(second uint64) [2]uint64 {
			return [2]uint64{first, second}
		})
	})
	var step = both(State(testSeed))
	if step.Value[0] != testSeed {
		t.Fatalf("first draw: %016x", step.Value[0])
	}
	if step.Value[1] != lcg.Advance(testSeed) {
		t.Fatalf("second draw must see the advanced state: %016x", step.Value[1])
	}
	if step.State != State(lcg.Advance(lcg.Advance(testSeed))) {
		t.Fatalf("final state must be advanced twice: %016x", step.State)
	}
}

func TestPure_LeavesStateUnchanged(t *testing.T) {
	var step = Pure[State, int](42)(State(testSeed))
	if step.Value != 42 || step.State != State(testSeed) {
		t.Fatal("Pure must emit the value without advancing")
	}
}

func TestMap_LeavesThreadingUntouched(t *testing.T) {
	var negated = Map[State, uint64, uint64](NextUint64, func(v uint64) uint64 { return ^v })
	var step = negated(State(testSeed))
	if step.Value != ^uint64(testSeed) {
		t.Fatalf("wrong mapped value: %016x", step.Value)
	}
	if step.State != State(lcg.Advance(testSeed)) {
		t.Fatalf("map must not advance the state again: %016x", step.State)
	}
}

func TestReplicate(t *testing.T) {
	for _, count := range []int{0, 1, 5} {
		var step = Replicate[State, uint64](NextUint64, count)(State(testSeed))
		if len(step.Value) != count {
			t.Fatal("wrong output count for", count)
		}

		var s = State(testSeed)
		for i := 0; i < count; i++ {
			var manual = NextUint64(s)
			s = manual.State
			if step.Value[i] != manual.Value {
				t.Fatal("replicate diverged from manual sequencing at", i, "for count", count)
			}
		}
		if step.State != s {
			t.Fatal("wrong final state for count", count)
		}
	}
}

func TestReplicate_ZeroLeavesStateUnchanged(t *testing.T) {
	var step = Replicate[State, uint64](NextUint64, 0)(State(testSeed))
	if len(step.Value) != 0 {
		t.Fatal("count 0 must emit no values")
	}
	if step.State != State(testSeed) {
		t.Fatal("count 0 must not advance the state")
	}
}

func TestReplicate_NegativeMatchesHandle(t *testing.T) {
	var step = Replicate[State, uint64](NextUint64, -1)(State(testSeed))
	if len(step.Value) != 0 || step.State != State(testSeed) {
		t.Fatal("negative count must behave like zero")
	}

	var h = lcg.New[lcg.Untagged](testSeed)
	var stringStep = NextString(-1)(State(testSeed))
	if stringStep.Value != h.NextString(-1) {
		t.Fatal("modes diverged on non-positive length")
	}
	if stringStep.State != State(testSeed) || h.State() != testSeed {
		t.Fatal("empty draws must not advance either mode")
	}
}

func TestFromSlot_Independence(t *testing.T) {
	var bank = NewBank(17, 23)

	var idStep = FromSlot[uint64](NextUint64, 0)(bank)
	if idStep.State[1] != State(23) {
		t.Fatalf("slot 1 disturbed by a slot 0 draw: %016x", idStep.State[1])
	}
	if idStep.State[0] != State(lcg.Advance(17)) {
		t.Fatalf("slot 0 not advanced: %016x", idStep.State[0])
	}

	var flagStep = FromSlot[uint64](NextUint64, 1)(bank)
	if flagStep.State[0] != State(17) {
		t.Fatalf("slot 0 disturbed by a slot 1 draw: %016x", flagStep.State[0])
	}
	if flagStep.Value != 23 {
		t.Fatalf("slot 1 draw must emit slot 1's pre-advance state: %016x", flagStep.Value)
	}

	// The input bank is a value; lifted transitions must not write into it.
	if bank[0] != State(17) || bank[1] != State(23) {
		t.Fatal("input bank mutated")
	}
}

func TestBankSum_Seed17(t *testing.T) {
	var h = lcg.New[lcg.Untagged](testSeed)
	var statefulSum uint64
	for i := 0; i < 3; i++ {
		statefulSum += h.Next()
	}

	var step = Replicate[State, uint64](NextUint64, 3)(State(testSeed))
	var pureSum uint64
	for _, value := range step.Value {
		pureSum += value
	}

	if statefulSum != pureSum {
		t.Fatalf("mode sums differ: %016x vs %016x", statefulSum, pureSum)
	}
	if statefulSum != seed17Sum3 {
		t.Fatalf("wrong sum for seed 17: %016x", statefulSum)
	}
}

func TestDerived_MatchHandle(t *testing.T) {
	var h = lcg.New[lcg.Untagged](testSeed)
	var s = State(testSeed)

	var boolStep = NextBool(s)
	if boolStep.Value != h.NextBool() {
		t.Fatal("bool diverged")
	}
	s = boolStep.State

	var charStep = NextChar(s)
	if charStep.Value != h.NextChar() {
		t.Fatal("char diverged")
	}
	s = charStep.State

	var stringStep = NextString(8)(s)
	if stringStep.Value != h.NextString(8) {
		t.Fatal("string diverged")
	}
	s = stringStep.State

	var byteStep = NextByte(s)
	if byteStep.Value != h.NextByte() {
		t.Fatal("byte diverged")
	}
}

func BenchmarkReplicate(b *testing.B) {
	var transition = Replicate[State, uint64](NextUint64, 64)
	var s = State(testSeed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = transition(s).State
	}
}
