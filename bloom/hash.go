package bloom

import "github.com/spaolacci/murmur3"

// hashFunc maps a key's canonical bytes to a bit index in [0, r).
type hashFunc func(key []byte) uint32

// hashFamily builds k seeded murmur3 functions bound to a table of r
// bits. Each function uses its family index as the murmur seed, so the
// outputs are pairwise independent-looking for a fixed key. r must be a
// power of two; reduction is a mask rather than a modulo.
func hashFamily(r uint32, k int) []hashFunc {
	mask := r - 1
	fns := make([]hashFunc, k)
	for i := 0; i < k; i++ {
		seed := uint32(i)
		fns[i] = func(key []byte) uint32 {
			return murmur3.Sum32WithSeed(key, seed) & mask
		}
	}
	return fns
}
