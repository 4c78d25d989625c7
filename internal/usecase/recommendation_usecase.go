package usecase

import (
	"context"
	"sync"

	"rehab-match/internal/converter"
	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/delivery/http/middleware"
	"rehab-match/internal/domain/entity"
	"rehab-match/internal/domain/repository"
	"rehab-match/internal/optimizer"
	"rehab-match/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, patientID uuid.UUID) (*dto.RecommendationResponse, error)
	GetAllRecommendations(ctx context.Context) (*dto.BatchRecommendationResponse, error)
}

type recommendationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	engine       *optimizer.Engine
	patientRepo  repository.PatientRepository
	snapshots    *service.SnapshotCacheService
	auditService service.AuditService
	topK         int
	workers      int
}

func NewRecommendationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	engine *optimizer.Engine,
	patientRepo repository.PatientRepository,
	snapshots *service.SnapshotCacheService,
	auditService service.AuditService,
	topK int,
	workers int,
) RecommendationUsecase {
	return &recommendationUsecase{
		db:           db,
		log:          log,
		engine:       engine,
		patientRepo:  patientRepo,
		snapshots:    snapshots,
		auditService: auditService,
		topK:         topK,
		workers:      workers,
	}
}

func (u *recommendationUsecase) GetRecommendations(ctx context.Context, patientID uuid.UUID) (*dto.RecommendationResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	clinicians, timeslots, err := u.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	response := u.recommendFor(converter.PatientToOptimizer(patient), clinicians, timeslots)
	return response, nil
}

// GetAllRecommendations computes top-K lists for every patient. Patients are
// independent of each other here, so the work fans out over a bounded worker
// pool against one shared catalog snapshot.
func (u *recommendationUsecase) GetAllRecommendations(ctx context.Context) (*dto.BatchRecommendationResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	clinicians, timeslots, err := u.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]dto.RecommendationResponse, len(patients))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < u.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = *u.recommendFor(converter.PatientToOptimizer(&patients[i]), clinicians, timeslots)
			}
		}()
	}

	for i := range patients {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	flaggedCount := 0
	for i := range results {
		if results[i].NeedsIntervention {
			flaggedCount++
		}
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogRun(ctx, u.db, &userID, entity.AuditActionRecommendationRun, entity.JSON{
		"patients":           len(patients),
		"clinicians":         len(clinicians),
		"timeslots":          len(timeslots),
		"needs_intervention": flaggedCount,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.BatchRecommendationResponse{
		Results: results,
		Total:   len(results),
	}, nil
}

// recommendFor runs the per-patient pipeline: flag the critical case, filter
// to feasible pairs, score with the weight profile the flagger chose, rank
// and truncate to top-K.
func (u *recommendationUsecase) recommendFor(p optimizer.Patient, clinicians []optimizer.Clinician, timeslots []optimizer.Timeslot) *dto.RecommendationResponse {
	flagged := u.engine.Flag(p)

	candidates := u.engine.EligibleCandidates(flagged.Patient, clinicians, timeslots)
	scored := u.engine.ScoreCandidates(flagged.Patient, candidates, flagged.Weights)
	top := optimizer.Recommend(scored, u.topK)

	return &dto.RecommendationResponse{
		PatientID:         p.ID,
		Recommendations:   converter.CandidatesToResponses(top),
		NeedsIntervention: flagged.NeedsIntervention,
		Notification:      converter.NotificationToResponse(flagged.Notification),
	}
}

func (u *recommendationUsecase) loadCatalog(ctx context.Context) ([]optimizer.Clinician, []optimizer.Timeslot, error) {
	clinicianEntities, err := u.snapshots.GetClinicians(ctx)
	if err != nil {
		u.log.Warnf("Failed to load clinicians: %+v", err)
		return nil, nil, err
	}

	timeslotEntities, err := u.snapshots.GetTimeslots(ctx)
	if err != nil {
		u.log.Warnf("Failed to load timeslots: %+v", err)
		return nil, nil, err
	}

	return converter.CliniciansToOptimizer(clinicianEntities), converter.TimeslotsToOptimizer(timeslotEntities), nil
}
