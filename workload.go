package main

import "math/rand"

const (
	memberLow   = 10000
	memberHigh  = 100000
	memberCount = 10000
	probeCount  = 1000

	urlLen      = 10
	urlAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// MembershipSets returns memberCount distinct integers drawn from
// [memberLow, memberHigh), probeCount of those members as positive
// probes, and probeCount integers from the same range that are
// guaranteed non-members as negative probes. The same seed always
// yields the same sets.
func MembershipSets(seed int64) (members, memberProbes, nonMemberProbes []int64) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(memberHigh - memberLow)

	members = make([]int64, memberCount)
	for i := range members {
		members[i] = int64(memberLow + perm[i])
	}
	// perm is already a random order, so prefixes are random samples.
	memberProbes = append([]int64(nil), members[:probeCount]...)
	nonMemberProbes = make([]int64, probeCount)
	for i := range nonMemberProbes {
		nonMemberProbes[i] = int64(memberLow + perm[memberCount+i])
	}
	return members, memberProbes, nonMemberProbes
}

// RandomURLs returns n random length-10 alphanumeric strings, used as
// never-inserted probes for the URL run.
func RandomURLs(seed int64, n int) []string {
	rng := rand.New(rand.NewSource(seed))
	urls := make([]string, n)
	buf := make([]byte, urlLen)
	for i := range urls {
		for j := range buf {
			buf[j] = urlAlphabet[rng.Intn(len(urlAlphabet))]
		}
		urls[i] = string(buf)
	}
	return urls
}
