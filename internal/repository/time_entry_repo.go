package repository

import (
	"errors"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TimeEntryRepository interface {
	Create(entry *models.TimeEntry) error
	Update(entry *models.TimeEntry) error
	GetByID(id uint) (*models.TimeEntry, error)
	GetActiveByEmployeeID(employeeID uint) (*models.TimeEntry, error)
	GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.TimeEntry, error)
	GetByEmployeeAndMonth(employeeID uint, year int, month time.Month) ([]models.TimeEntry, error)
	GetByDate(date time.Time) ([]models.TimeEntry, error)
	Delete(id uint) error
}

type GormTimeEntryRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormTimeEntryRepository(db *gorm.DB) (TimeEntryRepository, error) {
	if err := db.AutoMigrate(&models.TimeEntry{}); err != nil {
		return nil, err
	}
	return &GormTimeEntryRepository{db: db, logger: logrus.New()}, nil
}

func (r *GormTimeEntryRepository) Create(entry *models.TimeEntry) error {
	if !entry.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"employee_id": entry.EmployeeID,
			"work_date":   entry.WorkDate.Format("2006-01-02"),
		}).Warn("Invalid time entry data")
		return errors.New("invalid time entry data")
	}

	existing, err := r.GetByEmployeeAndDate(entry.EmployeeID, entry.WorkDate)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("time entry for this date already exists")
	}

	entry.UpdateCalculatedFields()
	return r.db.Create(entry).Error
}

func (r *GormTimeEntryRepository) Update(entry *models.TimeEntry) error {
	if !entry.IsValid() {
		return errors.New("invalid time entry data")
	}
	entry.UpdateCalculatedFields()
	return r.db.Save(entry).Error
}

func (r *GormTimeEntryRepository) GetByID(id uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.Preload("Employee").First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormTimeEntryRepository) GetActiveByEmployeeID(employeeID uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.Where("employee_id = ? AND status = ?",
		employeeID, models.TimeEntryStatusActive).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormTimeEntryRepository) GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.Where("employee_id = ? AND work_date = ?",
		employeeID, dateString(date)).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormTimeEntryRepository) GetByEmployeeAndMonth(employeeID uint, year int, month time.Month) ([]models.TimeEntry, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var entries []models.TimeEntry
	err := r.db.Where("employee_id = ? AND work_date >= ? AND work_date <= ?",
		employeeID, dateString(first), dateString(last)).
		Order("work_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *GormTimeEntryRepository) GetByDate(date time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.Preload("Employee").
		Where("work_date = ?", dateString(date)).
		Order("clock_in DESC").
		Find(&entries).Error
	return entries, err
}

func (r *GormTimeEntryRepository) Delete(id uint) error {
	return r.db.Delete(&models.TimeEntry{}, id).Error
}
