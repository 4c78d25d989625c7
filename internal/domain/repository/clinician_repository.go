package repository

import (
	"context"

	"rehab-match/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicianRepository interface {
	Create(ctx context.Context, db *gorm.DB, clinician *entity.Clinician) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Clinician, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Clinician, error)
	FindBySpecialty(ctx context.Context, db *gorm.DB, specialty string) ([]entity.Clinician, error)
	Update(ctx context.Context, db *gorm.DB, clinician *entity.Clinician) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
