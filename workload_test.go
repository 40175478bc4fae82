package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMembershipSetsDisjointAndDeterministic(t *testing.T) {
	members, memberProbes, nonMembers := MembershipSets(42)
	require.Len(t, members, memberCount)
	require.Len(t, memberProbes, probeCount)
	require.Len(t, nonMembers, probeCount)

	inSet := make(map[int64]bool, len(members))
	for _, m := range members {
		require.False(t, inSet[m], "duplicate member %d", m)
		require.GreaterOrEqual(t, m, int64(memberLow))
		require.Less(t, m, int64(memberHigh))
		inSet[m] = true
	}
	for _, p := range memberProbes {
		require.True(t, inSet[p])
	}
	for _, p := range nonMembers {
		require.False(t, inSet[p], "probe %d is a member", p)
	}

	members2, _, nonMembers2 := MembershipSets(42)
	require.Equal(t, members, members2)
	require.Equal(t, nonMembers, nonMembers2)
}

func TestRandomURLs(t *testing.T) {
	urls := RandomURLs(7, 100)
	require.Len(t, urls, 100)
	for _, u := range urls {
		require.Len(t, u, urlLen)
	}
	require.Equal(t, urls, RandomURLs(7, 100))
}
