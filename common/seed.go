package common

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Every random decision of a session (spawn edge, spawn height, enemy size)
// goes through one of these so a seed replays the same session.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was created or last reseeded with.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns an integer in [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat returns a float in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Bool returns true with probability one half.
func (r *SeededRNG) Bool() bool {
	return r.Random() < 0.5
}

// SessionSeed derives the seed of the n-th session from a base seed, so
// concurrent sessions started from one base seed do not mirror each other.
func SessionSeed(baseSeed uint32, n int) uint32 {
	seed := baseSeed ^ (uint32(n) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
