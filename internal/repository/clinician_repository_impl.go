package repository

import (
	"context"
	"errors"

	"rehab-match/internal/domain/entity"
	domainRepo "rehab-match/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicianRepository struct{}

func NewClinicianRepository() domainRepo.ClinicianRepository {
	return &clinicianRepository{}
}

func (r *clinicianRepository) Create(ctx context.Context, db *gorm.DB, clinician *entity.Clinician) error {
	return db.WithContext(ctx).Create(clinician).Error
}

func (r *clinicianRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Clinician, error) {
	var clinician entity.Clinician
	err := db.WithContext(ctx).Where("id = ?", id).First(&clinician).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinician, nil
}

func (r *clinicianRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Clinician, error) {
	var clinicians []entity.Clinician
	err := db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&clinicians).Error
	if err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (r *clinicianRepository) FindBySpecialty(ctx context.Context, db *gorm.DB, specialty string) ([]entity.Clinician, error) {
	var clinicians []entity.Clinician
	err := db.WithContext(ctx).
		Where("specialties @> ?", `["`+specialty+`"]`).
		Order("created_at ASC, id ASC").
		Find(&clinicians).Error
	if err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (r *clinicianRepository) Update(ctx context.Context, db *gorm.DB, clinician *entity.Clinician) error {
	return db.WithContext(ctx).Save(clinician).Error
}

func (r *clinicianRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Clinician{}).Error
}
