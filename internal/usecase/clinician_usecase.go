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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrClinicianNotFound = errors.New("clinician not found")
)

type ClinicianUsecase interface {
	Create(ctx context.Context, req *dto.CreateClinicianRequest) (*dto.ClinicianResponse, error)
	GetAll(ctx context.Context) (*dto.ClinicianListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClinicianResponse, error)
	GetBySpecialty(ctx context.Context, specialty string) (*dto.ClinicianListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateClinicianRequest) (*dto.ClinicianResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clinicianUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	clinicianRepo repository.ClinicianRepository
	auditService  service.AuditService
	snapshots     *service.SnapshotCacheService
}

func NewClinicianUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicianRepo repository.ClinicianRepository,
	auditService service.AuditService,
	snapshots *service.SnapshotCacheService,
) ClinicianUsecase {
	return &clinicianUsecase{
		db:            db,
		log:           log,
		clinicianRepo: clinicianRepo,
		auditService:  auditService,
		snapshots:     snapshots,
	}
}

func (u *clinicianUsecase) Create(ctx context.Context, req *dto.CreateClinicianRequest) (*dto.ClinicianResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinician := &entity.Clinician{
		FullName:     req.FullName,
		Specialties:  entity.StringList(req.Specialties),
		ClinicName:   req.ClinicName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Availability: entity.BoolMap(req.Availability),
	}

	if err := u.clinicianRepo.Create(ctx, tx, clinician); err != nil {
		u.log.Warnf("Failed to create clinician: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionClinicianCreate, "clinician", clinician.ID.String(), converter.ClinicianToResponse(clinician)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshots.InvalidateClinicians(ctx)

	return converter.ClinicianToResponse(clinician), nil
}

func (u *clinicianUsecase) GetAll(ctx context.Context) (*dto.ClinicianListResponse, error) {
	clinicians, err := u.clinicianRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all clinicians: %+v", err)
		return nil, err
	}

	responses := converter.CliniciansToResponses(clinicians)
	return &dto.ClinicianListResponse{
		Clinicians: responses,
		Total:      len(responses),
	}, nil
}

func (u *clinicianUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClinicianResponse, error) {
	clinician, err := u.clinicianRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find clinician: %+v", err)
		return nil, err
	}
	if clinician == nil {
		return nil, ErrClinicianNotFound
	}

	return converter.ClinicianToResponse(clinician), nil
}

func (u *clinicianUsecase) GetBySpecialty(ctx context.Context, specialty string) (*dto.ClinicianListResponse, error) {
	clinicians, err := u.clinicianRepo.FindBySpecialty(ctx, u.db, specialty)
	if err != nil {
		u.log.Warnf("Failed to find clinicians by specialty: %+v", err)
		return nil, err
	}

	responses := converter.CliniciansToResponses(clinicians)
	return &dto.ClinicianListResponse{
		Clinicians: responses,
		Total:      len(responses),
	}, nil
}

func (u *clinicianUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateClinicianRequest) (*dto.ClinicianResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinician, err := u.clinicianRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinician: %+v", err)
		return nil, err
	}
	if clinician == nil {
		return nil, ErrClinicianNotFound
	}

	oldValue := converter.ClinicianToResponse(clinician)

	if req.FullName != "" {
		clinician.FullName = req.FullName
	}
	if req.Specialties != nil {
		clinician.Specialties = entity.StringList(*req.Specialties)
	}
	if req.ClinicName != "" {
		clinician.ClinicName = req.ClinicName
	}
	if req.Latitude != nil {
		clinician.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		clinician.Longitude = req.Longitude
	}
	if req.Availability != nil {
		clinician.Availability = entity.BoolMap(*req.Availability)
	}

	if err := u.clinicianRepo.Update(ctx, tx, clinician); err != nil {
		u.log.Warnf("Failed to update clinician: %+v", err)
		return nil, err
	}

	newValue := converter.ClinicianToResponse(clinician)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionClinicianUpdate, "clinician", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshots.InvalidateClinicians(ctx)

	return newValue, nil
}

func (u *clinicianUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinician, err := u.clinicianRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinician: %+v", err)
		return err
	}
	if clinician == nil {
		return ErrClinicianNotFound
	}

	if err := u.clinicianRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete clinician: %+v", err)
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionClinicianDelete, "clinician", id.String(), converter.ClinicianToResponse(clinician)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.snapshots.InvalidateClinicians(ctx)

	return nil
}
