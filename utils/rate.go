package utils

import (
	"github.com/dustin/go-humanize"
	"strconv"
)

const MaxRawRate = 1000

// GenRate is a generation rate in values per second.
type GenRate float64

func (r GenRate) String() string {
	if r < MaxRawRate {
		return strconv.FormatFloat(float64(r), 'f', -1, 64)
	}
	return humanize.SIWithDigits(float64(r), 2, "vals/s")
}
