package repository

import (
	"context"
	"errors"

	"rehab-match/internal/domain/entity"
	domainRepo "rehab-match/internal/domain/repository"

	"gorm.io/gorm"
)

type timeslotRepository struct{}

func NewTimeslotRepository() domainRepo.TimeslotRepository {
	return &timeslotRepository{}
}

func (r *timeslotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.Timeslot) error {
	return db.WithContext(ctx).Create(slot).Error
}

func (r *timeslotRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Timeslot, error) {
	var slot entity.Timeslot
	err := db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *timeslotRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Timeslot, error) {
	var slots []entity.Timeslot
	err := db.WithContext(ctx).Order("time_index ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timeslotRepository) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Timeslot{}).Error
}
