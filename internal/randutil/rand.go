// Package randutil derives reproducible random streams from integer seeds.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ForPairing returns a stream unique to an ordered (black, white) pairing
// under a base seed, so swapping colors gives an independent sequence.
func ForPairing(seed int64, black, white int) *rand.Rand {
	u := mix(uint64(seed))
	u = mix(u ^ uint64(black))
	u = mix(u + goldenRatio64*uint64(white+1))
	return New(int64(u))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
