package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomInt64 returns a crypto-sourced seed for streams whose seed is not
// pinned by configuration.
func RandomInt64() int64 {
	var data [8]byte
	if _, err := rand.Read(data[:]); err != nil {
		panic(err)
	}
	return int64(binary.BigEndian.Uint64(data[:]))
}
