// Package randomizer provides random values for tests. The generator is shared and can be
// reseeded with Seed to reproduce a failing run.
package randomizer

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

var (
	lock sync.Mutex
	rng  = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed resets the shared generator.
func Seed(seed int64) {
	lock.Lock()
	rng = rand.New(rand.NewSource(seed))
	lock.Unlock()
}

// Pick returns a random element of choices. It panics if choices is empty.
func Pick[T any](choices []T) T {
	if len(choices) == 0 {
		panic("randomizer: Pick called with no choices")
	}
	lock.Lock()
	i := rng.Intn(len(choices))
	lock.Unlock()
	return choices[i]
}

// String returns n random lowercase ASCII letters.
func String(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	lock.Lock()
	for i := range b {
		b[i] = lowercaseLetters[rng.Intn(len(lowercaseLetters))]
	}
	lock.Unlock()
	return string(b)
}

// Integer returns a random integer in [lo, hi]. The bounds may be given in either order.
func Integer(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	lock.Lock()
	defer lock.Unlock()
	span := uint64(int64(hi)) - uint64(int64(lo))
	switch {
	case span == math.MaxUint64:
		return int(rng.Uint64())
	case span < math.MaxInt64:
		return lo + int(rng.Int63n(int64(span)+1))
	}
	// More than half of the uint64 range, so each draw is accepted with probability above 1/2.
	for {
		if x := rng.Uint64(); x <= span {
			return int(uint64(int64(lo)) + x)
		}
	}
}

// Real returns a random float in [lo, hi). The bounds may be given in either order.
func Real(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	lock.Lock()
	defer lock.Unlock()
	return lo + rng.Float64()*(hi-lo)
}
