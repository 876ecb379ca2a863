package repository

import (
	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

type ShiftTemplateRepository interface {
	Create(template *models.ShiftTemplate) error
	Update(template *models.ShiftTemplate) error
	GetByID(id uint) (*models.ShiftTemplate, error)
	GetActive() ([]models.ShiftTemplate, error)
	Delete(id uint) error
}

type GormShiftTemplateRepository struct {
	db *gorm.DB
}

func NewGormShiftTemplateRepository(db *gorm.DB) (ShiftTemplateRepository, error) {
	if err := db.AutoMigrate(&models.ShiftTemplate{}); err != nil {
		return nil, err
	}
	return &GormShiftTemplateRepository{db: db}, nil
}

func (r *GormShiftTemplateRepository) Create(template *models.ShiftTemplate) error {
	return r.db.Create(template).Error
}

func (r *GormShiftTemplateRepository) Update(template *models.ShiftTemplate) error {
	return r.db.Save(template).Error
}

func (r *GormShiftTemplateRepository) GetByID(id uint) (*models.ShiftTemplate, error) {
	var template models.ShiftTemplate
	err := r.db.First(&template, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *GormShiftTemplateRepository) GetActive() ([]models.ShiftTemplate, error) {
	var templates []models.ShiftTemplate
	err := r.db.Where("is_active = ?", true).
		Order("start_time").
		Find(&templates).Error
	return templates, err
}

func (r *GormShiftTemplateRepository) Delete(id uint) error {
	return r.db.Delete(&models.ShiftTemplate{}, id).Error
}
