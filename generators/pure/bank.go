package pure

// Bank is a composite state holding one independent stream per slot.
type Bank []State

// NewBank builds a bank with one slot per seed, in argument order.
func NewBank(seeds ...int64) Bank {
	var bank = make(Bank, len(seeds))
	for i, seed := range seeds {
		bank[i] = State(seed)
	}
	return bank
}

func (b Bank) with(slot int, s State) Bank {
	var next = make(Bank, len(b))
	copy(next, b)
	next[slot] = s
	return next
}

// FromSlot lifts a scalar transition into a bank transition advancing
// only the given slot. Every other slot is carried through untouched, and
// the input bank is never modified. Applying the result to a bank without
// that slot panics.
func FromSlot[V any](t Transition[State, V], slot int) Transition[Bank, V] {
	return func(b Bank) Step[Bank, V] {
		var step = t(b[slot])
		return Step[Bank, V]{State: b.with(slot, step.State), Value: step.Value}
	}
}
