package source

import (
	"github.com/fernandosanchezjr/detstream/generators/lcg"
	"github.com/fernandosanchezjr/detstream/utils"
)

// Lcg exposes the deterministic handle behind the Source interface with
// crypto seeding.
type Lcg struct {
	handle *lcg.Handle[lcg.Untagged]
}

func NewLcg() *Lcg {
	return &Lcg{
		handle: lcg.New[lcg.Untagged](utils.RandomInt64()),
	}
}

func (l *Lcg) Next() uint64 {
	return l.handle.Next()
}

func (l *Lcg) Reseed() {
	l.handle.Seed(utils.RandomInt64())
}
