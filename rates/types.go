package rates

import "github.com/katalvlaran/dynaflow/numeric"

// snapshot is one entry in the sliding-window rate history: the
// per-commodity rate map active from time until the next snapshot.
type snapshot struct {
	time    numeric.T
	rateMap map[int]numeric.T
}

// cloneRateMap returns a shallow copy so later mutation of a caller's
// map cannot retroactively corrupt a stored snapshot.
func cloneRateMap(m map[int]numeric.T) map[int]numeric.T {
	cp := make(map[int]numeric.T, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
