// Package store wraps Pebble (CockroachDB's LSM storage engine) as the
// exact-membership baseline the demo driver compares the Bloom filter
// against: every lookup the filter can answer with "definitely absent"
// is a disk read the baseline would have paid for.
package store

import (
	"encoding/binary"
	"fmt"

	"github.com/bloom-query-bench/bfmark/bloom"
	"github.com/cockroachdb/pebble"
)

// presentVal is the value stored for every member; only key presence
// matters.
var presentVal = []byte{1}

type Store struct {
	db *pebble.DB
}

// Open opens (or creates) a Pebble database at the given directory
// path.
func Open(dir string) (*Store, error) {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cleanly shuts down Pebble, flushing any in-memory state.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put records key as a member of the set.
func (s *Store) Put(key int64) error {
	return s.db.Set(encodeKey(key), presentVal, pebble.NoSync)
}

// Contains reports whether key was previously Put. This is the exact
// answer, at the cost of a storage read.
func (s *Store) Contains(key int64) (bool, error) {
	_, closer, err := s.db.Get(encodeKey(key))
	if err == pebble.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: get: %w", err)
	}
	closer.Close()
	return true, nil
}

// encodeKey encodes an int64 as a big-endian 8-byte slice. Big-endian
// preserves sort order, which Pebble relies on.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k))
	return b
}

// Prefiltered pairs a Store with a Bloom filter sized for the expected
// membership. Contains consults the filter first and only reads Pebble
// on "maybe present", counting the reads the filter suppressed.
type Prefiltered struct {
	store      *Store
	filter     *bloom.Filter
	suppressed uint64
}

// NewPrefiltered wraps s with filter. The filter must be empty or
// already consistent with the store's contents; Put keeps both in
// step.
func NewPrefiltered(s *Store, filter *bloom.Filter) *Prefiltered {
	return &Prefiltered{store: s, filter: filter}
}

// Put records key in both the filter and the store.
func (p *Prefiltered) Put(key int64) error {
	p.filter.Insert(bloom.Int64Key(key))
	return p.store.Put(key)
}

// Contains reports whether key is a member. A "definitely absent"
// answer from the filter skips the storage read entirely; the filter's
// no-false-negative guarantee makes that safe.
func (p *Prefiltered) Contains(key int64) (bool, error) {
	if !p.filter.Test(bloom.Int64Key(key)) {
		p.suppressed++
		return false, nil
	}
	return p.store.Contains(key)
}

// Suppressed returns how many Contains calls the filter resolved
// without touching Pebble.
func (p *Prefiltered) Suppressed() uint64 { return p.suppressed }
