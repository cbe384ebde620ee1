package randx

import (
	"math/rand/v2"
	"time"
)

func NewPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewPCGFromTime は現在時刻をシードにしたPCGを返す。
func NewPCGFromTime() *rand.Rand {
	return NewPCG(uint64(time.Now().UnixNano()))
}

