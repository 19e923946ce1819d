package source

import (
	"github.com/fernandosanchezjr/detstream/utils"
	"gonum.org/v1/gonum/mathext/prng"
)

// Xoshiro wraps gonum's Xoshiro256**.
type Xoshiro struct {
	rng *prng.Xoshiro256starstar
}

func NewXoshiro() *Xoshiro {
	return &Xoshiro{
		rng: prng.NewXoshiro256starstar(uint64(utils.RandomInt64())),
	}
}

func (x *Xoshiro) Next() uint64 {
	return x.rng.Uint64()
}

func (x *Xoshiro) Reseed() {
	x.rng.Seed(uint64(utils.RandomInt64()))
}
