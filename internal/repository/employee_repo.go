package repository

import (
	"github.com/Rawfaux/Haustechnik/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetByPersonalNr(personalNr string) (*models.Employee, error)
	GetActive() ([]models.Employee, error)
	GetAll() ([]models.Employee, error)
	Delete(id uint) error
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) (EmployeeRepository, error) {
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		return nil, err
	}
	return &GormEmployeeRepository{db: db}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) GetByPersonalNr(personalNr string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("personal_nr = ?", personalNr).First(&employee).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) GetActive() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("status = ?", models.EmployeeStatusActive).
		Order("nachname").
		Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("nachname").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Employee{}, id).Error
}
