package rng

import "math/bits"

const pcg32Mult = 6364136223846793005

// PCG32 is a minimal-standard PCG generator (XSH RR 64/32) with stream
// selection. Generators seeded with distinct stream identifiers produce
// provably non-overlapping output sequences, which is what lets each
// simulation worker own an independent stream derived from one base seed.
//
// A PCG32 is not safe for concurrent use; every worker must own its own
// instance.
type PCG32 struct {
	state  uint64
	inc    uint64
	stream uint64
}

// NewPCG32 returns a generator initialized with the given seed and stream
// identifier.
func NewPCG32(seed, stream uint64) *PCG32 {
	p := &PCG32{}
	p.Seed(seed, stream)
	return p
}

// Seed resets the generator to the canonical PCG initialization for the
// given seed and stream identifier.
func (p *PCG32) Seed(seed, stream uint64) {
	p.stream = stream
	p.state = 0
	p.inc = (stream << 1) | 1
	p.Uint32()
	p.state += seed
	p.Uint32()
}

// Stream reports the stream identifier the generator was seeded with.
func (p *PCG32) Stream() uint64 { return p.stream }

// Uint32 advances the generator and returns the next 32-bit output.
func (p *PCG32) Uint32() uint32 {
	old := p.state
	p.state = old*pcg32Mult + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 composes two 32-bit draws into a single 64-bit value, high word
// first.
func (p *PCG32) Uint64() uint64 {
	hi := uint64(p.Uint32())
	lo := uint64(p.Uint32())
	return hi<<32 | lo
}
