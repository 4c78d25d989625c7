package optimizer

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Strategy labels which solve path produced a result so callers can tell a
// provably optimal assignment from a heuristic one.
const (
	StrategyOptimal   = "optimal"
	StrategyHeuristic = "heuristic"
)

// ErrBackendUnavailable signals that the optimization backend could not be
// reached or did not finish in time. It is recovered locally by falling back
// to the greedy heuristic and is never surfaced as a user-facing failure.
var ErrBackendUnavailable = errors.New("optimization backend unavailable")

// Backend finds a conflict-free subset of candidates maximizing total score,
// subject to each patient and each (clinician, timeslot) pair being used at
// most once. Implementations must be deterministic for identical input.
type Backend interface {
	Name() string
	Solve(ctx context.Context, candidates []Candidate) ([]Candidate, error)
}

// SolveResult is the outcome of a global solve.
type SolveResult struct {
	Assignments        []Candidate
	UnassignedPatients []string
	Strategy           string
}

// Solver runs the primary backend and falls back to the greedy heuristic
// when the backend errors out or the caller's deadline fires. The greedy
// path is total: a Solver never fails, it only degrades.
type Solver struct {
	primary  Backend
	fallback Backend
	log      *logrus.Logger
}

func NewSolver(primary Backend, log *logrus.Logger) *Solver {
	return &Solver{
		primary:  primary,
		fallback: NewGreedyBackend(),
		log:      log,
	}
}

// SolveAll produces one conflict-free assignment across all patients.
// patients must be the full snapshot so patients left without a slot are
// reported as unassigned rather than silently dropped.
func (s *Solver) SolveAll(ctx context.Context, patients []Patient, candidates []Candidate) SolveResult {
	strategy := StrategyOptimal
	selected, err := s.solvePrimary(ctx, candidates)
	if err != nil {
		s.log.Warnf("Optimization backend unavailable, using greedy fallback: %+v", err)
		strategy = StrategyHeuristic
		selected, _ = s.fallback.Solve(context.Background(), candidates)
	}

	assigned := make(map[string]bool, len(selected))
	for _, c := range selected {
		assigned[c.PatientID] = true
	}

	unassigned := []string{}
	for _, p := range patients {
		if !assigned[p.ID] {
			unassigned = append(unassigned, p.ID)
		}
	}

	return SolveResult{
		Assignments:        selected,
		UnassignedPatients: unassigned,
		Strategy:           strategy,
	}
}

func (s *Solver) solvePrimary(ctx context.Context, candidates []Candidate) ([]Candidate, error) {
	if s.primary == nil {
		return nil, ErrBackendUnavailable
	}
	return s.primary.Solve(ctx, candidates)
}
