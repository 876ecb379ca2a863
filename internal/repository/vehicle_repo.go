package repository

import (
	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	GetByID(id uint) (*models.Vehicle, error)
	GetActive() ([]models.Vehicle, error)
	Delete(id uint) error
}

type GormVehicleRepository struct {
	db *gorm.DB
}

func NewGormVehicleRepository(db *gorm.DB) (VehicleRepository, error) {
	if err := db.AutoMigrate(&models.Vehicle{}); err != nil {
		return nil, err
	}
	return &GormVehicleRepository{db: db}, nil
}

func (r *GormVehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

func (r *GormVehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

func (r *GormVehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *GormVehicleRepository) GetActive() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Where("is_active = ?", true).
		Order("kennzeichen").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *GormVehicleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vehicle{}, id).Error
}
