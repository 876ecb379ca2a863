package service

import (
	"fmt"

	"github.com/Rawfaux/Haustechnik/internal/models"
	"github.com/Rawfaux/Haustechnik/internal/repository"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	repo   repository.EmployeeRepository
	logger *logrus.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logrus.New()}
}

func (s *EmployeeService) Create(employee *models.Employee) error {
	if employee.Status == "" {
		employee.Status = models.EmployeeStatusActive
	}
	if !employee.IsValid() {
		return fmt.Errorf("invalid employee data: first and last name are required")
	}
	if employee.PersonalNr != "" {
		existing, err := s.repo.GetByPersonalNr(employee.PersonalNr)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("personal number %s already in use", employee.PersonalNr)
		}
	}
	if err := s.repo.Create(employee); err != nil {
		s.logger.WithError(err).Error("Failed to create employee")
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"id":   employee.ID,
		"name": employee.DisplayName(),
	}).Info("Employee created")
	return nil
}

func (s *EmployeeService) Update(employee *models.Employee) error {
	if !employee.IsValid() {
		return fmt.Errorf("invalid employee data")
	}
	existing, err := s.repo.GetByID(employee.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("employee %d not found", employee.ID)
	}
	return s.repo.Update(employee)
}

func (s *EmployeeService) GetByID(id uint) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

func (s *EmployeeService) ListActive() ([]models.Employee, error) {
	return s.repo.GetActive()
}

func (s *EmployeeService) ListAll() ([]models.Employee, error) {
	return s.repo.GetAll()
}

// Deactivate marks an employee inactive instead of deleting the row, keeping
// shift and absence history intact.
func (s *EmployeeService) Deactivate(id uint) error {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("employee %d not found", id)
	}
	employee.Status = models.EmployeeStatusInactive
	return s.repo.Update(employee)
}
