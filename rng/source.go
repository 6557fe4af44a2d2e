package rng

import "golang.org/x/exp/rand"

var _ rand.Source = (*Source)(nil)

// Source adapts a PCG32 stream to golang.org/x/exp/rand.Source so gonum's
// distributions can draw from the same seeded stream family as the polar
// sampler.
type Source struct {
	src *PCG32
}

// NewSource wraps src. The adapter shares state with src, so the underlying
// stream must not be drawn from anywhere else.
func NewSource(src *PCG32) *Source {
	return &Source{src: src}
}

func (s *Source) Uint64() uint64 {
	return s.src.Uint64()
}

// Seed reseeds the underlying generator, preserving its stream identifier.
func (s *Source) Seed(seed uint64) {
	s.src.Seed(seed, s.src.stream)
}
