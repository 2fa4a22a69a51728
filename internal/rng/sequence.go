package rng

// sequence replays a fixed list of draws.
type sequence struct {
	values []float64
	next   int
}

// Sequence returns a Source that yields values in order and panics once
// they run out. Tests use it to force exact outcomes at roll boundaries.
func Sequence(values ...float64) Source {
	return &sequence{values: values}
}

func (s *sequence) Float64() float64 {
	if s.next >= len(s.values) {
		panic("rng: scripted sequence exhausted")
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Draw returns the float that makes Int(minInclusive, maxExclusive) yield
// want. It lands in the middle of want's bucket to avoid rounding at the
// edges.
func Draw(want, minInclusive, maxExclusive int) float64 {
	return (float64(want-minInclusive) + 0.5) / float64(maxExclusive-minInclusive)
}
