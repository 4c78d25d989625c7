package optimizer

import "sort"

// Recommend ranks a patient's scored candidates and returns the best k.
// Ordering: score descending, then earlier slot (TimeIndex ascending), then
// clinician ID ascending so repeated runs are byte-identical. Returns fewer
// than k entries, possibly none, when fewer exist.
func Recommend(candidates []Candidate, k int) []Candidate {
	if k <= 0 || len(candidates) == 0 {
		return []Candidate{}
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].TimeIndex != ranked[j].TimeIndex {
			return ranked[i].TimeIndex < ranked[j].TimeIndex
		}
		return ranked[i].ClinicianID < ranked[j].ClinicianID
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
