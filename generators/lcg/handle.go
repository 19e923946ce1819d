package lcg

// Handle owns the mutable state of a single stream. The S parameter is a
// phantom stream-identity tag: *Handle[IDStream] and *Handle[FlagStream]
// are distinct types, so a consumer declared against one tag cannot be
// handed a handle for another. A Handle must not be shared between
// goroutines without external synchronization.
type Handle[S any] struct {
	state uint64
}

// Untagged is the tag for callers with a single stream.
type Untagged struct{}

func New[S any](seed int64) *Handle[S] {
	return &Handle[S]{state: uint64(seed)}
}

// Next returns the current state and advances. The output of a step is
// the pre-advance state; the advanced state stays private to the handle.
func (h *Handle[S]) Next() uint64 {
	var previous = h.state
	h.state = Advance(previous)
	return previous
}

// NextBool returns the sign bit of the next value.
func (h *Handle[S]) NextBool() bool {
	return int64(h.Next()) < 0
}

// NextChar returns 't' or 'f'.
func (h *Handle[S]) NextChar() byte {
	if h.NextBool() {
		return 't'
	}
	return 'f'
}

// NextString returns length chars, drawn in call order. A non-positive
// length yields an empty string without advancing the stream.
func (h *Handle[S]) NextString(length int) string {
	if length <= 0 {
		return ""
	}
	var buf = make([]byte, length)
	for i := range buf {
		buf[i] = h.NextChar()
	}
	return string(buf)
}

// NextByte returns the top 8 bits of the next value.
func (h *Handle[S]) NextByte() int8 {
	return int8(h.Next() >> 56)
}

// Seed resets the handle to a fresh stream position.
func (h *Handle[S]) Seed(seed int64) {
	h.state = uint64(seed)
}

// State reports the current state for persistence.
func (h *Handle[S]) State() uint64 {
	return h.state
}

// Restore resumes the stream from a state recorded by State.
func (h *Handle[S]) Restore(state uint64) {
	h.state = state
}
