package repository

import (
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

type AbsenceRepository interface {
	Create(absence *models.Absence) error
	Update(absence *models.Absence) error
	GetByID(id uint) (*models.Absence, error)
	GetByEmployeeID(employeeID uint) ([]models.Absence, error)
	GetPending() ([]models.Absence, error)
	// GetEffectiveWindow returns approved and confirmed absences intersecting
	// [startDate, endDate].
	GetEffectiveWindow(startDate, endDate time.Time) ([]models.Absence, error)
	Delete(id uint) error
}

type GormAbsenceRepository struct {
	db *gorm.DB
}

func NewGormAbsenceRepository(db *gorm.DB) (AbsenceRepository, error) {
	if err := db.AutoMigrate(&models.Absence{}); err != nil {
		return nil, err
	}
	return &GormAbsenceRepository{db: db}, nil
}

func (r *GormAbsenceRepository) Create(absence *models.Absence) error {
	return r.db.Create(absence).Error
}

func (r *GormAbsenceRepository) Update(absence *models.Absence) error {
	return r.db.Save(absence).Error
}

func (r *GormAbsenceRepository) GetByID(id uint) (*models.Absence, error) {
	var absence models.Absence
	err := r.db.Preload("Employee").First(&absence, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

func (r *GormAbsenceRepository) GetByEmployeeID(employeeID uint) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) GetPending() ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Preload("Employee").
		Where("status = ?", models.AbsenceStatusPending).
		Order("created_at").
		Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) GetEffectiveWindow(startDate, endDate time.Time) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Where("start_date <= ? AND end_date >= ?",
		dateString(endDate), dateString(startDate)).
		Where("status IN ?", []string{models.AbsenceStatusApproved, models.AbsenceStatusConfirmed}).
		Order("start_date").
		Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Absence{}, id).Error
}
