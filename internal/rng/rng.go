package rng

import "math/rand/v2"

// Source supplies the random draws behind entitlement grants, so tests can
// pin outcomes instead of asserting statistically.
type Source interface {
	// IntN returns a uniform draw in [0, n).
	IntN(n int) int
}

type systemSource struct{}

// NewSystem returns a source backed by math/rand/v2.
func NewSystem() Source {
	return systemSource{}
}

func (systemSource) IntN(n int) int {
	return rand.IntN(n)
}

type fixedSource int

// NewFixed returns a source whose every draw is v (clamped to the range),
// useful for forcing an entitlement outcome in tests.
func NewFixed(v int) Source {
	return fixedSource(v)
}

func (f fixedSource) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
