package priority

// A Priority is a candidate value together with the quality
// that a header assigns to it.
type Priority struct {
	Value string
	Q     float64
}

// PrioritiesFor looks up each of candidates in prefs, as returned by
// ParseHeader, and returns their priorities in the same order.
// Candidates missing from prefs get Unacceptable. Duplicate candidates
// produce duplicate entries.
func PrioritiesFor(prefs map[string]float64, candidates []string) []Priority {
	var prios []Priority
	for _, c := range candidates {
		q, ok := prefs[c]
		if !ok {
			q = Unacceptable
		}
		prios = append(prios, Priority{c, q})
	}
	return prios
}

// ParsePrioritiesFor parses header and returns the priorities of those
// candidates whose quality is strictly positive, in the order of candidates.
// Candidates that the header doesn't mention, gives a malformed q,
// or explicitly rejects with q=0 are left out.
func ParsePrioritiesFor(header string, candidates []string) []Priority {
	var accepted []Priority
	for _, prio := range PrioritiesFor(ParseHeader(header), candidates) {
		if prio.Q > 0 {
			accepted = append(accepted, prio)
		}
	}
	return accepted
}

// Preferred returns the candidate with the highest quality in header,
// breaking ties in favor of the earlier candidate. If no candidate is
// acceptable, ok is false.
func Preferred(header string, candidates []string) (value string, ok bool) {
	var best Priority
	for _, prio := range ParsePrioritiesFor(header, candidates) {
		if !ok || prio.Q > best.Q {
			best, ok = prio, true
		}
	}
	return best.Value, ok
}
