package optimizer

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// LPBackend models the global assignment as a linear program and solves it
// with gonum's simplex. Every candidate column has exactly one entry in the
// patient constraint family and one in the (clinician, timeslot) family, so
// the constraint matrix is totally unimodular and the LP optimum lands on
// an integral vertex: the relaxation solves the 0/1 problem exactly.
type LPBackend struct{}

func NewLPBackend() *LPBackend {
	return &LPBackend{}
}

func (b *LPBackend) Name() string {
	return StrategyOptimal
}

func (b *LPBackend) Solve(ctx context.Context, candidates []Candidate) ([]Candidate, error) {
	if len(candidates) == 0 {
		return []Candidate{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	type lpResult struct {
		selected []Candidate
		err      error
	}
	done := make(chan lpResult, 1)

	go func() {
		selected, err := solveSimplex(candidates)
		done <- lpResult{selected: selected, err: err}
	}()

	select {
	case <-ctx.Done():
		// The caller's deadline bounds how long the backend may run; an
		// abandoned simplex goroutine finishes and is garbage collected.
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, res.err)
		}
		return res.selected, nil
	}
}

func solveSimplex(candidates []Candidate) ([]Candidate, error) {
	// Canonical candidate order makes the model, and therefore the chosen
	// vertex, independent of caller iteration order.
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PatientID != ordered[j].PatientID {
			return ordered[i].PatientID < ordered[j].PatientID
		}
		if ordered[i].ClinicianID != ordered[j].ClinicianID {
			return ordered[i].ClinicianID < ordered[j].ClinicianID
		}
		return ordered[i].SlotID < ordered[j].SlotID
	})

	patientRow := map[string]int{}
	pairRow := map[string]int{}
	for _, c := range ordered {
		if _, ok := patientRow[c.PatientID]; !ok {
			patientRow[c.PatientID] = len(patientRow)
		}
		pairKey := c.ClinicianID + "|" + c.SlotID
		if _, ok := pairRow[pairKey]; !ok {
			pairRow[pairKey] = len(pairRow)
		}
	}

	nCand := len(ordered)
	nPatients := len(patientRow)
	nPairs := len(pairRow)
	rows := nPatients + nPairs
	cols := nCand + rows // one slack per <=1 constraint brings Ax=b standard form

	a := mat.NewDense(rows, cols, nil)
	bVec := make([]float64, rows)
	c := make([]float64, cols)

	for j, cand := range ordered {
		pRow := patientRow[cand.PatientID]
		rRow := nPatients + pairRow[cand.ClinicianID+"|"+cand.SlotID]
		a.Set(pRow, j, 1)
		a.Set(rRow, j, 1)
		c[j] = -cand.Score // simplex minimizes; we want the max-weight subset
	}
	for i := 0; i < rows; i++ {
		a.Set(i, nCand+i, 1)
		bVec[i] = 1
	}

	_, x, err := lp.Simplex(c, a, bVec, 0, nil)
	if err != nil {
		return nil, err
	}

	selected := []Candidate{}
	for j, cand := range ordered {
		if x[j] > 0.5 {
			selected = append(selected, cand)
		}
	}
	return selected, nil
}
