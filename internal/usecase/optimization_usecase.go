package usecase

import (
	"context"
	"time"

	"rehab-match/internal/converter"
	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/delivery/http/middleware"
	"rehab-match/internal/domain/entity"
	"rehab-match/internal/domain/repository"
	"rehab-match/internal/optimizer"
	"rehab-match/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OptimizationUsecase interface {
	OptimizeAll(ctx context.Context) (*dto.OptimizeResponse, error)
}

type optimizationUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	engine        *optimizer.Engine
	solver        *optimizer.Solver
	patientRepo   repository.PatientRepository
	snapshots     *service.SnapshotCacheService
	auditService  service.AuditService
	solverTimeout time.Duration
}

func NewOptimizationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	engine *optimizer.Engine,
	solver *optimizer.Solver,
	patientRepo repository.PatientRepository,
	snapshots *service.SnapshotCacheService,
	auditService service.AuditService,
	solverTimeout time.Duration,
) OptimizationUsecase {
	return &optimizationUsecase{
		db:            db,
		log:           log,
		engine:        engine,
		solver:        solver,
		patientRepo:   patientRepo,
		snapshots:     snapshots,
		auditService:  auditService,
		solverTimeout: solverTimeout,
	}
}

// OptimizeAll computes one conflict-free schedule over the whole caseload:
// every patient gets at most one (clinician, timeslot) and no pair is double
// booked. The solve runs under a hard deadline; if the optimal backend cannot
// answer in time the greedy heuristic fills in, so the endpoint always
// returns a feasible schedule.
func (u *optimizationUsecase) OptimizeAll(ctx context.Context) (*dto.OptimizeResponse, error) {
	patientEntities, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	clinicianEntities, err := u.snapshots.GetClinicians(ctx)
	if err != nil {
		u.log.Warnf("Failed to load clinicians: %+v", err)
		return nil, err
	}

	timeslotEntities, err := u.snapshots.GetTimeslots(ctx)
	if err != nil {
		u.log.Warnf("Failed to load timeslots: %+v", err)
		return nil, err
	}

	clinicians := converter.CliniciansToOptimizer(clinicianEntities)
	timeslots := converter.TimeslotsToOptimizer(timeslotEntities)

	// Flag each patient first so critical cases enter the pool with escalated
	// urgency, widened radius and the urgency-heavy weight profile.
	patients := make([]optimizer.Patient, 0, len(patientEntities))
	candidates := []optimizer.Candidate{}
	for i := range patientEntities {
		flagged := u.engine.Flag(converter.PatientToOptimizer(&patientEntities[i]))
		patients = append(patients, flagged.Patient)

		eligible := u.engine.EligibleCandidates(flagged.Patient, clinicians, timeslots)
		candidates = append(candidates, u.engine.ScoreCandidates(flagged.Patient, eligible, flagged.Weights)...)
	}

	solveCtx, cancel := context.WithTimeout(ctx, u.solverTimeout)
	defer cancel()

	started := time.Now()
	result := u.solver.SolveAll(solveCtx, patients, candidates)
	elapsed := time.Since(started)

	u.log.Infof("Optimization run: %d patients, %d candidates, %d assigned, strategy=%s in %v",
		len(patients), len(candidates), len(result.Assignments), result.Strategy, elapsed)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogRun(ctx, u.db, &userID, entity.AuditActionOptimizeRun, entity.JSON{
		"patients":   len(patients),
		"candidates": len(candidates),
		"assigned":   len(result.Assignments),
		"unassigned": len(result.UnassignedPatients),
		"strategy":   result.Strategy,
		"elapsed_ms": elapsed.Milliseconds(),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	assignments := converter.CandidatesToResponses(result.Assignments)
	return &dto.OptimizeResponse{
		Assignments:  assignments,
		Unassigned:   result.UnassignedPatients,
		StrategyUsed: result.Strategy,
		Total:        len(assignments),
	}, nil
}
