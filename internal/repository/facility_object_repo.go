package repository

import (
	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

type FacilityObjectRepository interface {
	Create(object *models.FacilityObject) error
	Update(object *models.FacilityObject) error
	GetByID(id uint) (*models.FacilityObject, error)
	GetActive() ([]models.FacilityObject, error)
	Delete(id uint) error
}

type GormFacilityObjectRepository struct {
	db *gorm.DB
}

func NewGormFacilityObjectRepository(db *gorm.DB) (FacilityObjectRepository, error) {
	if err := db.AutoMigrate(&models.FacilityObject{}); err != nil {
		return nil, err
	}
	return &GormFacilityObjectRepository{db: db}, nil
}

func (r *GormFacilityObjectRepository) Create(object *models.FacilityObject) error {
	return r.db.Create(object).Error
}

func (r *GormFacilityObjectRepository) Update(object *models.FacilityObject) error {
	return r.db.Save(object).Error
}

func (r *GormFacilityObjectRepository) GetByID(id uint) (*models.FacilityObject, error) {
	var object models.FacilityObject
	err := r.db.First(&object, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &object, nil
}

func (r *GormFacilityObjectRepository) GetActive() ([]models.FacilityObject, error) {
	var objects []models.FacilityObject
	err := r.db.Where("is_active = ?", true).
		Order("name").
		Find(&objects).Error
	return objects, err
}

func (r *GormFacilityObjectRepository) Delete(id uint) error {
	return r.db.Delete(&models.FacilityObject{}, id).Error
}
