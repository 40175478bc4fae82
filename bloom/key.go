package bloom

import "encoding/binary"

// Key is any value reducible to a canonical byte sequence for hashing.
// Two keys with equal HashBytes are indistinguishable to the filter.
type Key interface {
	HashBytes() []byte
}

// Int64Key hashes an integer as its 8-byte big-endian encoding.
type Int64Key int64

func (k Int64Key) HashBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k))
	return b
}

// StringKey hashes the raw bytes of the string.
type StringKey string

func (k StringKey) HashBytes() []byte { return []byte(k) }
