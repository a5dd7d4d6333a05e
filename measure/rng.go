// SPDX-License-Identifier: MIT

package measure

import "math/rand/v2"

// DefaultSeed replaces a zero seed in NewSource.
const DefaultSeed uint64 = 1

// NewSource returns a deterministic PCG source. seed == 0 uses DefaultSeed.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.NewPCG(seed, mix(seed, 0))
}

// DeriveSource returns an independent deterministic stream for (seed, stream),
// e.g. one per goroutine.
func DeriveSource(seed, stream uint64) rand.Source {
	if seed == 0 {
		seed = DefaultSeed
	}
	s := mix(seed, stream+1)
	return rand.NewPCG(s, mix(s, 0))
}

// mix is the SplitMix64 finaliser applied to parent ^ stream.
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
