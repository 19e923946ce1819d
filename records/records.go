// Package records composes values drawn from independent streams into
// plain data records. An identifier stream and a flag stream are kept
// apart by handle tags in stateful mode and by bank slots in pure mode;
// handing a builder the wrong stream does not compile.
package records

import (
	"github.com/fernandosanchezjr/detstream/generators/lcg"
	"github.com/fernandosanchezjr/detstream/utils"
)

// IDStream tags the identifier stream.
type IDStream struct{}

// FlagStream tags the flag stream.
type FlagStream struct{}

const FlagCount = 4

// Record pairs an identifier with a derived flag string. Pure data; it
// holds no generator state.
type Record struct {
	ID    utils.Value64
	Flags string
}

// Nested composes two records drawn from the same pair of streams.
type Nested struct {
	First  Record
	Second Record
}

func NewRecord(ids *lcg.Handle[IDStream], flags *lcg.Handle[FlagStream]) Record {
	return Record{
		ID:    utils.Value64(ids.Next()),
		Flags: flags.NextString(FlagCount),
	}
}

func NewNested(ids *lcg.Handle[IDStream], flags *lcg.Handle[FlagStream]) Nested {
	return Nested{
		First:  NewRecord(ids, flags),
		Second: NewRecord(ids, flags),
	}
}
