// Package bloom implements a fixed-size Bloom filter: a probabilistic
// set-membership structure that answers "definitely absent" or
// "possibly present" with a bounded false-positive rate and no false
// negatives.
//
// A filter is sized once at construction from the expected element
// count and the target false-positive rate, populated with Insert and
// queried with Test. There is no reset; replace the filter if the
// parameters must change.
package bloom

import (
	"errors"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvalidParameter is returned by New when n < 1 or the target
// false-positive rate is outside (0, 1).
var ErrInvalidParameter = errors.New("bloom: n must be >= 1 and fp rate in (0,1)")

// perFuncBytes is the assumed fixed overhead of one bound hash
// function (closure pointer plus captured seed and mask), used only by
// the MemoryFootprint estimate.
const perFuncBytes = 16

// Filter is a Bloom filter over keys reducible to bytes. It is not
// safe for concurrent Insert without external locking; concurrent Test
// calls that do not overlap an Insert are safe.
type Filter struct {
	n      int
	fpRate float64
	r      uint32 // bit array length, always a power of two
	k      int
	bits   *bitset.BitSet
	family []hashFunc
}

// New sizes a filter for n expected elements at the target
// false-positive rate.
//
// The theoretical optimum -n*ln(p)/(ln2)^2 is rounded up to the next
// power of two, so index reduction is a mask and the realized
// false-positive rate at load n is at most the target. The hash count
// is k = ceil((R/n)*ln2), clamped to at least 1.
func New(n int, fpRate float64) (*Filter, error) {
	if n < 1 || fpRate <= 0 || fpRate >= 1 {
		return nil, ErrInvalidParameter
	}

	rOpt := -float64(n) * math.Log(fpRate) / (math.Ln2 * math.Ln2)
	exp := math.Ceil(math.Log2(rOpt))
	if exp < 0 {
		exp = 0
	}
	r := uint32(1) << uint(exp)

	k := int(math.Ceil(float64(r) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}

	return &Filter{
		n:      n,
		fpRate: fpRate,
		r:      r,
		k:      k,
		bits:   bitset.New(uint(r)),
		family: hashFamily(r, k),
	}, nil
}

// Insert sets the k probe bits for key. Inserting the same key again
// has no further effect.
func (f *Filter) Insert(key Key) {
	b := key.HashBytes()
	for _, h := range f.family {
		f.bits.Set(uint(h(b)))
	}
}

// Test reports whether key may be present. A false result is
// definitive; a true result may be a false positive. It returns on the
// first clear probe bit, since a single zero proves absence.
func (f *Filter) Test(key Key) bool {
	b := key.HashBytes()
	for _, h := range f.family {
		if !f.bits.Test(uint(h(b))) {
			return false
		}
	}
	return true
}

// Capacity returns n, the expected element count the filter was sized
// for.
func (f *Filter) Capacity() int { return f.n }

// FPRateTarget returns the false-positive rate the filter was sized
// for.
func (f *Filter) FPRateTarget() float64 { return f.fpRate }

// BitCount returns R, the length of the bit array.
func (f *Filter) BitCount() uint32 { return f.r }

// HashCount returns k, the number of hash functions.
func (f *Filter) HashCount() int { return f.k }

// MemoryFootprint estimates the filter's storage in bytes: R bits
// rounded up to whole bytes plus fixed per-function overhead.
func (f *Filter) MemoryFootprint() uint64 {
	return uint64((f.r+7)/8) + uint64(f.k)*perFuncBytes
}
