package records

import (
	"github.com/fernandosanchezjr/detstream/generators/pure"
	"github.com/fernandosanchezjr/detstream/utils"
)

// Bank slots for the pure-mode builders. A bank passed to NextRecord or
// NextNested must hold the identifier state in IDSlot and the flag state
// in FlagSlot.
const (
	IDSlot = iota
	FlagSlot
	SlotCount
)

// NextRecord is the pure-mode equivalent of NewRecord over a two-slot
// bank. Draw order matches NewRecord: identifier first, then flags.
func NextRecord(b pure.Bank) pure.Step[pure.Bank, Record] {
	return pure.Then(
		pure.FromSlot[uint64](pure.NextUint64, IDSlot),
		func(id uint64) pure.Transition[pure.Bank, Record] {
			return pure.Map(
				pure.FromSlot[string](pure.NextString(FlagCount), FlagSlot),
				func(flags string) Record {
					return Record{ID: utils.Value64(id), Flags: flags}
				},
			)
		},
	)(b)
}

// NextNested is the pure-mode equivalent of NewNested.
func NextNested(b pure.Bank) pure.Step[pure.Bank, Nested] {
	return pure.Then(
		pure.Transition[pure.Bank, Record](NextRecord),
		func(first Record) pure.Transition[pure.Bank, Nested] {
			return pure.Map(
				pure.Transition[pure.Bank, Record](NextRecord),
				func(second Record) Nested {
					return Nested{First: first, Second: second}
				},
			)
		},
	)(b)
}
