// Package pure exposes the lcg recurrence as pure state-threading
// transitions. A transition consumes one state and yields a Step holding
// the state to thread forward and the value for the caller; nothing is
// mutated. The combinators are generic over the threaded state type, so
// the same sequencing serves scalar states and multi-slot banks.
package pure

import "github.com/fernandosanchezjr/detstream/generators/lcg"

// State is a scalar stream state.
type State uint64

// Step pairs the state to thread forward with the value handed to the
// caller. The fields are named so the two can never trade places the way
// positional pairs let them.
type Step[S, V any] struct {
	State S
	Value V
}

// Transition advances a state of type S and produces a value of type V.
type Transition[S, V any] func(S) Step[S, V]

// NextUint64 is the primitive transition: it emits the pre-advance state
// and threads the advanced one.
func NextUint64(s State) Step[State, uint64] {
	return Step[State, uint64]{
		State: State(lcg.Advance(uint64(s))),
		Value: uint64(s),
	}
}

// NextBool emits the sign bit of the next value.
func NextBool(s State) Step[State, bool] {
	var step = NextUint64(s)
	return Step[State, bool]{State: step.State, Value: int64(step.Value) < 0}
}

// NextChar emits 't' or 'f'.
func NextChar(s State) Step[State, byte] {
	var step = NextBool(s)
	var char byte = 'f'
	if step.Value {
		char = 't'
	}
	return Step[State, byte]{State: step.State, Value: char}
}

// NextString returns a transition emitting length chars in draw order.
func NextString(length int) Transition[State, string] {
	var chars = Replicate[State, byte](NextChar, length)
	return func(s State) Step[State, string] {
		var step = chars(s)
		return Step[State, string]{State: step.State, Value: string(step.Value)}
	}
}

// NextByte emits the top 8 bits of the next value.
func NextByte(s State) Step[State, int8] {
	var step = NextUint64(s)
	return Step[State, int8]{State: step.State, Value: int8(step.Value >> 56)}
}
