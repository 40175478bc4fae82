package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloom-query-bench/bfmark/bloom"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestStorePutContains(t *testing.T) {
	s := openStore(t)

	for k := int64(0); k < 100; k++ {
		require.NoError(t, s.Put(k))
	}
	for k := int64(0); k < 100; k++ {
		ok, err := s.Contains(k)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := s.Contains(1000)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPrefilteredAgreesWithStore(t *testing.T) {
	s := openStore(t)
	filter, err := bloom.New(1000, 0.01)
	require.NoError(t, err)
	pf := NewPrefiltered(s, filter)

	for k := int64(0); k < 1000; k++ {
		require.NoError(t, pf.Put(k))
	}

	// Members always pass the prefilter, so no lookup is suppressed.
	for k := int64(0); k < 1000; k++ {
		ok, err := pf.Contains(k)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Zero(t, pf.Suppressed())

	// Negative lookups are mostly answered by the filter alone; the
	// remainder fall through to Pebble and still come back false.
	for k := int64(10000); k < 10100; k++ {
		ok, err := pf.Contains(k)
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.NotZero(t, pf.Suppressed())
	require.LessOrEqual(t, pf.Suppressed(), uint64(100))
}
