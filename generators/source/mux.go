package source

import (
	"github.com/fernandosanchezjr/detstream/utils"
	"math/rand"
)

const MaxSourceReuse = 8

// Mux multiplexes a set of sources, hopping to a randomly picked one
// after MaxSourceReuse draws.
type Mux struct {
	rng       *rand.Rand
	sources   []Source
	current   int
	retrieved int
}

func NewMux(sources ...Source) *Mux {
	var m = &Mux{
		rng:     rand.New(rand.NewSource(utils.RandomInt64())),
		sources: sources,
	}
	if len(m.sources) == 0 {
		m.sources = []Source{NewLcg(), NewXoshiro(), NewMT()}
	}
	m.shuffle()
	return m
}

func (m *Mux) Next() uint64 {
	if m.retrieved >= MaxSourceReuse {
		m.shuffle()
		m.retrieved = 0
	}
	m.retrieved += 1
	return m.sources[m.current].Next()
}

func (m *Mux) shuffle() {
	m.current = m.rng.Intn(len(m.sources))
}

func (m *Mux) Reseed() {
	m.rng.Seed(utils.RandomInt64())
	for _, s := range m.sources {
		s.Reseed()
	}
}
