package utils

import "fmt"

// Value64 is a raw 64-bit stream value.
type Value64 uint64

func (v Value64) String() string {
	return fmt.Sprintf("%016x", uint64(v))
}
