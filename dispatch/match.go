package dispatch

import "sort"

// greedyMatch sorts candidates by score descending (stable, so ties
// preserve input order per spec.md §4.5.3) and walks the list accepting a
// candidate only if neither its driver nor its request has already been
// claimed. This is intentionally the suboptimal-but-bounded O(N log N)
// matcher spec.md §9 mandates, not the Hungarian algorithm — grounded on
// the teacher's tsp/matching.go greedyMatch, whose "deterministic,
// tie-broken, side-effect-scoped" style is carried over here even though
// the underlying problem (bipartite matching vs. nearest-pair matching on
// a metric) differs.
func greedyMatch(candidates []scoredCandidate) []scoredCandidate {
	ordered := make([]scoredCandidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].score > ordered[j].score
	})

	usedDrivers := make(map[string]bool, len(ordered))
	usedRequests := make(map[string]bool, len(ordered))
	accepted := make([]scoredCandidate, 0, len(ordered))

	for _, c := range ordered {
		if usedDrivers[c.driverID] || usedRequests[c.requestID] {
			continue
		}
		usedDrivers[c.driverID] = true
		usedRequests[c.requestID] = true
		accepted = append(accepted, c)
	}

	return accepted
}
