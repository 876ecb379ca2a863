package repository

import (
	"errors"

	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

// TripStats aggregates the logbook per vehicle.
type TripStats struct {
	TripCount       int64
	TotalDistanceKm float64
}

type TripRepository interface {
	Create(trip *models.Trip) error
	Update(trip *models.Trip) error
	GetByID(id uint) (*models.Trip, error)
	GetActiveByVehicleID(vehicleID uint) (*models.Trip, error)
	GetByVehicleID(vehicleID uint, limit int) ([]models.Trip, error)
	GetStatsByVehicleID(vehicleID uint) (*TripStats, error)
	Delete(id uint) error
}

type GormTripRepository struct {
	db *gorm.DB
}

func NewGormTripRepository(db *gorm.DB) (TripRepository, error) {
	if err := db.AutoMigrate(&models.Trip{}); err != nil {
		return nil, err
	}
	return &GormTripRepository{db: db}, nil
}

func (r *GormTripRepository) Create(trip *models.Trip) error {
	return r.db.Create(trip).Error
}

func (r *GormTripRepository) Update(trip *models.Trip) error {
	return r.db.Save(trip).Error
}

func (r *GormTripRepository) GetByID(id uint) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Preload("Vehicle").Preload("Driver").First(&trip, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *GormTripRepository) GetActiveByVehicleID(vehicleID uint) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Where("vehicle_id = ? AND status = ?",
		vehicleID, models.TripStatusActive).First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *GormTripRepository) GetByVehicleID(vehicleID uint, limit int) ([]models.Trip, error) {
	query := r.db.Preload("Driver").
		Where("vehicle_id = ?", vehicleID).
		Order("date DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var trips []models.Trip
	err := query.Find(&trips).Error
	return trips, err
}

func (r *GormTripRepository) GetStatsByVehicleID(vehicleID uint) (*TripStats, error) {
	var stats TripStats
	err := r.db.Model(&models.Trip{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, models.TripStatusCompleted).
		Count(&stats.TripCount).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&models.Trip{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, models.TripStatusCompleted).
		Select("COALESCE(SUM(end_km - start_km), 0)").
		Scan(&stats.TotalDistanceKm).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *GormTripRepository) Delete(id uint) error {
	return r.db.Delete(&models.Trip{}, id).Error
}
