// Package source provides 64-bit value sources for callers that do not
// need reproducibility: the deterministic lcg stream behind a crypto
// seed, gonum reference generators, and a multiplexer hopping between
// them. The deterministic contract lives in generators/lcg and
// generators/pure; nothing here is part of it.
package source

// Source produces a stream of 64-bit values. Reseed moves the source to
// an unrelated stream position.
type Source interface {
	Next() uint64
	Reseed()
}
