package usecase

import (
	"context"
	"errors"

	"rehab-match/internal/converter"
	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/delivery/http/middleware"
	"rehab-match/internal/domain/entity"
	"rehab-match/internal/domain/repository"
	"rehab-match/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTimeslotNotFound = errors.New("timeslot not found")
	ErrTimeslotExists   = errors.New("timeslot already exists")
)

type TimeslotUsecase interface {
	Create(ctx context.Context, req *dto.CreateTimeslotRequest) (*dto.TimeslotResponse, error)
	GetAll(ctx context.Context) (*dto.TimeslotListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TimeslotResponse, error)
	Delete(ctx context.Context, id string) error
}

type timeslotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	timeslotRepo repository.TimeslotRepository
	auditService service.AuditService
	snapshots    *service.SnapshotCacheService
}

func NewTimeslotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	timeslotRepo repository.TimeslotRepository,
	auditService service.AuditService,
	snapshots *service.SnapshotCacheService,
) TimeslotUsecase {
	return &timeslotUsecase{
		db:           db,
		log:          log,
		timeslotRepo: timeslotRepo,
		auditService: auditService,
		snapshots:    snapshots,
	}
}

func (u *timeslotUsecase) Create(ctx context.Context, req *dto.CreateTimeslotRequest) (*dto.TimeslotResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.timeslotRepo.FindByID(ctx, tx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find timeslot: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrTimeslotExists
	}

	slot := &entity.Timeslot{
		ID:        req.ID,
		Day:       req.Day,
		TimeLabel: req.TimeLabel,
		TimeIndex: req.TimeIndex,
	}

	if err := u.timeslotRepo.Create(ctx, tx, slot); err != nil {
		u.log.Warnf("Failed to create timeslot: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionTimeslotCreate, "timeslot", slot.ID, converter.TimeslotToResponse(slot)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshots.InvalidateTimeslots(ctx)

	return converter.TimeslotToResponse(slot), nil
}

func (u *timeslotUsecase) GetAll(ctx context.Context) (*dto.TimeslotListResponse, error) {
	slots, err := u.timeslotRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all timeslots: %+v", err)
		return nil, err
	}

	responses := converter.TimeslotsToResponses(slots)
	return &dto.TimeslotListResponse{
		Timeslots: responses,
		Total:     len(responses),
	}, nil
}

func (u *timeslotUsecase) GetByID(ctx context.Context, id string) (*dto.TimeslotResponse, error) {
	slot, err := u.timeslotRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find timeslot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrTimeslotNotFound
	}

	return converter.TimeslotToResponse(slot), nil
}

func (u *timeslotUsecase) Delete(ctx context.Context, id string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.timeslotRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find timeslot: %+v", err)
		return err
	}
	if slot == nil {
		return ErrTimeslotNotFound
	}

	if err := u.timeslotRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete timeslot: %+v", err)
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionTimeslotDelete, "timeslot", id, converter.TimeslotToResponse(slot)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.snapshots.InvalidateTimeslots(ctx)

	return nil
}
