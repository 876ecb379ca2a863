package repository

import (
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	CreateBatch(shifts []models.Shift) error
	GetByID(id uint) (*models.Shift, error)
	// GetWindow returns non-cancelled shifts in [startDate, endDate], ordered
	// by date and start time. objectID 0 means all objects.
	GetWindow(startDate, endDate time.Time, objectID uint) ([]models.Shift, error)
	GetByEmployeeAndWindow(employeeID uint, startDate, endDate time.Time) ([]models.Shift, error)
	DeleteByIDs(ids []uint) error
	CancelByIDs(ids []uint) error
}

type GormShiftRepository struct {
	db *gorm.DB
}

func NewGormShiftRepository(db *gorm.DB) (ShiftRepository, error) {
	if err := db.AutoMigrate(&models.Shift{}); err != nil {
		return nil, err
	}
	return &GormShiftRepository{db: db}, nil
}

func (r *GormShiftRepository) CreateBatch(shifts []models.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.Create(&shifts).Error
}

func (r *GormShiftRepository) GetByID(id uint) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("Employee").Preload("Object").First(&shift, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *GormShiftRepository) GetWindow(startDate, endDate time.Time, objectID uint) ([]models.Shift, error) {
	query := r.db.Preload("Employee").Preload("Object").
		Where("date >= ? AND date <= ?", dateString(startDate), dateString(endDate)).
		Where("status <> ?", models.ShiftStatusCancelled)
	if objectID != 0 {
		query = query.Where("object_id = ?", objectID)
	}

	var shifts []models.Shift
	err := query.Order("date").Order("start_time").Find(&shifts).Error
	return shifts, err
}

func (r *GormShiftRepository) GetByEmployeeAndWindow(employeeID uint, startDate, endDate time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("employee_id = ? AND date >= ? AND date <= ?",
		employeeID, dateString(startDate), dateString(endDate)).
		Where("status <> ?", models.ShiftStatusCancelled).
		Order("date").
		Find(&shifts).Error
	return shifts, err
}

func (r *GormShiftRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Shift{}, ids).Error
}

func (r *GormShiftRepository) CancelByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Shift{}).
		Where("id IN ?", ids).
		Update("status", models.ShiftStatusCancelled).Error
}

// dateString normalizes a date for comparison against date columns, SQLite
// stores them as text.
func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}
