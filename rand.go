package main

import "math/rand/v2"

// Rand is the random number generator of a World. It is a plain value: a
// copy of a Rand is an independent generator that continues with exactly
// the same sequence as the Rand it was copied from.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.RSeed(seed)
	return
}

func (r *Rand) RSeed(seed int64) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
}

// Float returns a number in [0, 1).
func (r *Rand) Float() float64 {
	return float64(r.pcg.Uint64()>>11) / (1 << 53)
}

// RFloat returns a number in [lo, hi).
func (r *Rand) RFloat(lo float64, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// RInt returns a number in [lo, hi]. Both ends are included.
func (r *Rand) RInt(lo int64, hi int64) int64 {
	return lo + int64(r.pcg.Uint64()%uint64(hi-lo+1))
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float() < p
}
