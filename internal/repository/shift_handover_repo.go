package repository

import (
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

type ShiftHandoverRepository interface {
	Create(handover *models.ShiftHandover) error
	GetByID(id uint) (*models.ShiftHandover, error)
	// GetApprovedWindow returns approved handovers starting in
	// [startDate, endDate].
	GetApprovedWindow(startDate, endDate time.Time) ([]models.ShiftHandover, error)
	Delete(id uint) error
}

type GormShiftHandoverRepository struct {
	db *gorm.DB
}

func NewGormShiftHandoverRepository(db *gorm.DB) (ShiftHandoverRepository, error) {
	if err := db.AutoMigrate(&models.ShiftHandover{}); err != nil {
		return nil, err
	}
	return &GormShiftHandoverRepository{db: db}, nil
}

func (r *GormShiftHandoverRepository) Create(handover *models.ShiftHandover) error {
	return r.db.Create(handover).Error
}

func (r *GormShiftHandoverRepository) GetByID(id uint) (*models.ShiftHandover, error) {
	var handover models.ShiftHandover
	err := r.db.First(&handover, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &handover, nil
}

func (r *GormShiftHandoverRepository) GetApprovedWindow(startDate, endDate time.Time) ([]models.ShiftHandover, error) {
	var handovers []models.ShiftHandover
	err := r.db.Where("handover_date >= ? AND handover_date <= ?",
		dateString(startDate), dateString(endDate)).
		Where("status = ?", models.HandoverStatusApproved).
		Order("handover_date").
		Find(&handovers).Error
	return handovers, err
}

func (r *GormShiftHandoverRepository) Delete(id uint) error {
	return r.db.Delete(&models.ShiftHandover{}, id).Error
}
