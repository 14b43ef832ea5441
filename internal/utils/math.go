package utils

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// lockedSource serialises access to a rand.Source so a single *rand.Rand can be
// shared across request goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// NewRand returns the shared pseudo-random source used by the engine.
// A zero seed derives one from the clock; any other seed gives a reproducible stream.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(&lockedSource{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}) //nolint:gosec // Game logic randomness, not security critical
}

// UniformRange maps a [0,1) roll onto [lo, hi).
func UniformRange(roll, lo, hi float64) float64 {
	return lo + roll*(hi-lo)
}

// RoundTo rounds x half away from zero to the given number of decimal places.
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// CeilTo rounds x up to the given number of decimal places.
func CeilTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Ceil(x*p) / p
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundInt rounds half away from zero and converts to int.
func RoundInt(x float64) int {
	return int(math.Round(x))
}
