package source

import (
	"github.com/fernandosanchezjr/detstream/utils"
	"gonum.org/v1/gonum/mathext/prng"
)

// MT wraps gonum's MT19937-64.
type MT struct {
	rng *prng.MT19937_64
}

func NewMT() *MT {
	m := &MT{
		rng: prng.NewMT19937_64(),
	}
	m.rng.Seed(uint64(utils.RandomInt64()))
	return m
}

func (m *MT) Next() uint64 {
	return m.rng.Uint64()
}

func (m *MT) Reseed() {
	m.rng.Seed(uint64(utils.RandomInt64()))
}
