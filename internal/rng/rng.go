// Package rng implements the battle engine's random-number contract: a
// seedable uniform generator where a zero seed draws entropy from the
// platform and any non-zero seed reproduces a deterministic sequence. Only
// the contract is specified by the simulation rules; the concrete
// algorithm (Go's math/rand, seeded via crypto/rand when seed==0) is an
// implementation detail.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source is a uniform random-number source satisfying the engine's
// contract: RandBelow(n) returns a value in [0,n).
type Source struct {
	r *mrand.Rand
}

// New builds a Source. seed == 0 means "use a platform entropy source";
// any other value produces a deterministic sequence reproducible across
// runs, which is what the test scenarios rely on.
func New(seed uint32) *Source {
	if seed == 0 {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			// Platform entropy is unavailable; fall back to a fixed seed
			// rather than leaving the generator uninitialized.
			seed = 1
		} else {
			seed = uint32(binary.LittleEndian.Uint64(buf[:])) | 1
		}
	}
	return &Source{r: mrand.New(mrand.NewSource(int64(seed)))}
}

// RandBelow returns a uniformly distributed value in [0, n). n == 0 is a
// programmer error and panics, matching the engine's convention of
// asserting on precondition violations rather than silently misbehaving.
func (s *Source) RandBelow(n uint16) uint16 {
	if n == 0 {
		panic("rng: RandBelow(0)")
	}
	return uint16(s.r.Intn(int(n)))
}

// Chance reports true with probability numerator/denominator, consuming
// exactly one draw.
func (s *Source) Chance(numerator, denominator uint16) bool {
	return s.RandBelow(denominator) < numerator
}

// CoinFlip consumes one draw and returns true or false with equal
// probability — used for the speed-tie order tie-break.
func (s *Source) CoinFlip() bool {
	return s.RandBelow(2) == 0
}
