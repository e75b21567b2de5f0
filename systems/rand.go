package systems

import "math/rand"

// Source supplies the uniform draws used for speed jitter and wander targets.
// Tests substitute FixedSource or ScriptedSource to make movement exact.
type Source interface {
	// Uniform returns a value in [lo, hi].
	Uniform(lo, hi float64) float64
}

// RandSource draws from a math/rand generator.
type RandSource struct {
	r *rand.Rand
}

// NewRandSource creates a source seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns lo + u*(hi-lo) for u in [0, 1).
func (s *RandSource) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Intn exposes integer draws for initial placement.
func (s *RandSource) Intn(n int) int {
	return s.r.Intn(n)
}

// FixedSource always returns the point at fraction T of the requested range.
// T = 0.5 makes jitter zero and sends wanderers to the field centre.
type FixedSource struct {
	T float64
}

// Uniform returns lo + T*(hi-lo).
func (s FixedSource) Uniform(lo, hi float64) float64 {
	return lo + s.T*(hi-lo)
}

// ScriptedSource replays a fixed list of fractions, cycling when exhausted.
type ScriptedSource struct {
	Fractions []float64
	next      int
}

// Uniform returns lo + f*(hi-lo) for the next scripted fraction f.
func (s *ScriptedSource) Uniform(lo, hi float64) float64 {
	if len(s.Fractions) == 0 {
		return lo + 0.5*(hi-lo)
	}
	f := s.Fractions[s.next%len(s.Fractions)]
	s.next++
	return lo + f*(hi-lo)
}

// Draws returns how many values have been consumed.
func (s *ScriptedSource) Draws() int {
	return s.next
}
