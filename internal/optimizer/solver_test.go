package optimizer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type failingBackend struct{}

func (failingBackend) Name() string { return StrategyOptimal }

func (failingBackend) Solve(context.Context, []Candidate) ([]Candidate, error) {
	return nil, errors.New("backend down")
}

func assertFeasible(t *testing.T, selected []Candidate) {
	t.Helper()
	patients := map[string]bool{}
	pairs := map[string]bool{}
	for _, c := range selected {
		require.False(t, patients[c.PatientID], "patient %s assigned twice", c.PatientID)
		pairKey := c.ClinicianID + "|" + c.SlotID
		require.False(t, pairs[pairKey], "pair %s used twice", pairKey)
		patients[c.PatientID] = true
		pairs[pairKey] = true
	}
}

func TestGreedyBackend_Feasibility(t *testing.T) {
	cands := []Candidate{
		{PatientID: "p1", PatientUrgency: UrgencyHigh, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.9},
		{PatientID: "p1", PatientUrgency: UrgencyHigh, ClinicianID: "dr_a", SlotID: "s2", TimeIndex: 1, Score: 0.8},
		{PatientID: "p2", PatientUrgency: UrgencyLow, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.95},
		{PatientID: "p3", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s2", TimeIndex: 1, Score: 0.5},
	}

	selected, err := NewGreedyBackend().Solve(context.Background(), cands)
	require.NoError(t, err)
	assertFeasible(t, selected)
}

func TestGreedyBackend_UrgencyFirstOrdering(t *testing.T) {
	// The Low-urgency patient has the higher score, but High urgency wins
	// the shared slot under the greedy priority order.
	cands := []Candidate{
		{PatientID: "p_low", PatientUrgency: UrgencyLow, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.95},
		{PatientID: "p_high", PatientUrgency: UrgencyHigh, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.6},
	}

	selected, err := NewGreedyBackend().Solve(context.Background(), cands)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "p_high", selected[0].PatientID)
}

func TestGreedyBackend_Deterministic(t *testing.T) {
	cands := []Candidate{
		{PatientID: "p2", PatientUrgency: UrgencyMedium, ClinicianID: "dr_b", SlotID: "s1", TimeIndex: 0, Score: 0.7},
		{PatientID: "p1", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.7},
		{PatientID: "p3", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s2", TimeIndex: 1, Score: 0.7},
	}

	first, err := NewGreedyBackend().Solve(context.Background(), cands)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := NewGreedyBackend().Solve(context.Background(), cands)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLPBackend_MaximizesTotalScore(t *testing.T) {
	// Greedy would grab p1@s1 (0.9) and strand p2; the optimal pairing is
	// p1@s2 + p2@s1 for a total of 1.65.
	cands := []Candidate{
		{PatientID: "p1", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.9},
		{PatientID: "p1", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s2", TimeIndex: 1, Score: 0.8},
		{PatientID: "p2", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.85},
	}

	selected, err := NewLPBackend().Solve(context.Background(), cands)
	require.NoError(t, err)
	assertFeasible(t, selected)
	require.Len(t, selected, 2)

	bySlot := map[string]string{}
	for _, c := range selected {
		bySlot[c.SlotID] = c.PatientID
	}
	assert.Equal(t, "p2", bySlot["s1"])
	assert.Equal(t, "p1", bySlot["s2"])
}

func TestLPBackend_EmptyInput(t *testing.T) {
	selected, err := NewLPBackend().Solve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestLPBackend_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cands := []Candidate{
		{PatientID: "p1", ClinicianID: "dr_a", SlotID: "s1", Score: 0.5},
	}
	_, err := NewLPBackend().Solve(ctx, cands)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

// Two patients eligible only for the same single (clinician, slot) pair:
// the higher-scoring patient wins, the other is reported unassigned.
func TestSolveAll_ContendedSlot(t *testing.T) {
	patients := []Patient{
		{ID: "p1", Urgency: UrgencyMedium},
		{ID: "p2", Urgency: UrgencyMedium},
	}
	cands := []Candidate{
		{PatientID: "p1", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "mon_9am", TimeIndex: 0, Score: 0.8},
		{PatientID: "p2", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "mon_9am", TimeIndex: 0, Score: 0.6},
	}

	solver := NewSolver(NewLPBackend(), quietLogger())
	res := solver.SolveAll(context.Background(), patients, cands)

	assert.Equal(t, StrategyOptimal, res.Strategy)
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "p1", res.Assignments[0].PatientID)
	assert.Equal(t, []string{"p2"}, res.UnassignedPatients)
}

// Backend unreachable: the solver falls back to the greedy heuristic, labels
// the result accordingly, and the assignment stays feasible.
func TestSolveAll_BackendFailureFallsBackToHeuristic(t *testing.T) {
	patients := []Patient{
		{ID: "p1", Urgency: UrgencyHigh},
		{ID: "p2", Urgency: UrgencyLow},
		{ID: "p3", Urgency: UrgencyLow},
	}
	cands := []Candidate{
		{PatientID: "p1", PatientUrgency: UrgencyHigh, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.9},
		{PatientID: "p2", PatientUrgency: UrgencyLow, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.7},
		{PatientID: "p2", PatientUrgency: UrgencyLow, ClinicianID: "dr_b", SlotID: "s1", TimeIndex: 0, Score: 0.5},
	}

	solver := NewSolver(failingBackend{}, quietLogger())
	res := solver.SolveAll(context.Background(), patients, cands)

	assert.Equal(t, StrategyHeuristic, res.Strategy)
	assertFeasible(t, res.Assignments)
	assert.Len(t, res.Assignments, 2)
	assert.Equal(t, []string{"p3"}, res.UnassignedPatients)
}

func TestSolveAll_NilPrimaryUsesHeuristic(t *testing.T) {
	solver := NewSolver(nil, quietLogger())
	res := solver.SolveAll(context.Background(), []Patient{{ID: "p1"}}, nil)

	assert.Equal(t, StrategyHeuristic, res.Strategy)
	assert.Empty(t, res.Assignments)
	assert.Equal(t, []string{"p1"}, res.UnassignedPatients)
}

func TestSolveAll_Deterministic(t *testing.T) {
	patients := []Patient{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
	cands := []Candidate{
		{PatientID: "p1", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.7},
		{PatientID: "p2", PatientUrgency: UrgencyMedium, ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.7},
		{PatientID: "p3", PatientUrgency: UrgencyMedium, ClinicianID: "dr_b", SlotID: "s2", TimeIndex: 1, Score: 0.4},
	}

	solver := NewSolver(NewLPBackend(), quietLogger())
	first := solver.SolveAll(context.Background(), patients, cands)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, solver.SolveAll(context.Background(), patients, cands))
	}
}
