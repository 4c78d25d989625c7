package repository

import (
	"context"

	"rehab-match/internal/domain/entity"

	"gorm.io/gorm"
)

type TimeslotRepository interface {
	Create(ctx context.Context, db *gorm.DB, slot *entity.Timeslot) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Timeslot, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Timeslot, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}
