package optimizer

import (
	"context"
	"sort"
)

// GreedyBackend is the deterministic heuristic substitute for the LP
// backend. It walks candidates once in a fixed priority order, taking each
// one whose patient and (clinician, timeslot) pair are still free. The
// result is always feasible but only approximately weight-maximal.
type GreedyBackend struct{}

func NewGreedyBackend() *GreedyBackend {
	return &GreedyBackend{}
}

func (b *GreedyBackend) Name() string {
	return StrategyHeuristic
}

// greedyLess is the documented candidate priority: urgency sub-score
// descending, composite score descending, earlier slot first, then patient
// and clinician IDs as the final deterministic keys. Adjust policy here,
// not at call sites.
func greedyLess(a, b Candidate) bool {
	ua, ub := a.PatientUrgency.SubScore(), b.PatientUrgency.SubScore()
	if ua != ub {
		return ua > ub
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.TimeIndex != b.TimeIndex {
		return a.TimeIndex < b.TimeIndex
	}
	if a.PatientID != b.PatientID {
		return a.PatientID < b.PatientID
	}
	return a.ClinicianID < b.ClinicianID
}

func (b *GreedyBackend) Solve(_ context.Context, candidates []Candidate) ([]Candidate, error) {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return greedyLess(ordered[i], ordered[j])
	})

	patientTaken := make(map[string]bool)
	pairTaken := make(map[string]bool)

	selected := []Candidate{}
	for _, c := range ordered {
		pairKey := c.ClinicianID + "|" + c.SlotID
		if patientTaken[c.PatientID] || pairTaken[pairKey] {
			continue
		}
		patientTaken[c.PatientID] = true
		pairTaken[pairKey] = true
		selected = append(selected, c)
	}

	return selected, nil
}
