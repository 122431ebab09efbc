package roulette

import "math/rand/v2"

// RandomSource supplies the randomness behind a spin.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

// globalRNG draws from the shared math/rand/v2 generators, which are safe for
// concurrent use. Outcomes are pseudo-random; the wheel makes no fairness or
// verifiability claims.
type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }
func (globalRNG) IntN(n int) int   { return rand.IntN(n) }

// DefaultRNG returns the process-wide random source.
func DefaultRNG() RandomSource { return globalRNG{} }

// Replicable RNG (tests, Monte Carlo runs). Not safe for concurrent use.
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }
