package service

import (
	"fmt"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"
	"github.com/Rawfaux/Haustechnik/internal/repository"

	"github.com/sirupsen/logrus"
)

// Notifier receives one-line messages about workflow events. Implemented by
// pkg/notify; a nil notifier disables notifications.
type Notifier interface {
	Send(text string) error
}

type AbsenceService struct {
	absenceRepo  repository.AbsenceRepository
	employeeRepo repository.EmployeeRepository
	notifier     Notifier
	logger       *logrus.Logger
}

func NewAbsenceService(
	absenceRepo repository.AbsenceRepository,
	employeeRepo repository.EmployeeRepository,
	notifier Notifier,
) *AbsenceService {
	return &AbsenceService{
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		logger:       logrus.New(),
	}
}

// Submit files a new leave request. Vacation and similar requests enter the
// approval workflow as pending; sick notes are facts, they enter as confirmed
// and immediately block scheduling.
func (s *AbsenceService) Submit(absence *models.Absence) error {
	if absence.Status == "" {
		absence.Status = models.AbsenceStatusPending
		if absence.Type == models.AbsenceTypeSick {
			absence.Status = models.AbsenceStatusConfirmed
		}
	}
	if !absence.IsValid() {
		return fmt.Errorf("invalid absence data")
	}

	employee, err := s.employeeRepo.GetByID(absence.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("employee %d not found", absence.EmployeeID)
	}
	if absence.CountsAgainstVacation() && absence.Workdays() > employee.RemainingVacationDays() {
		return fmt.Errorf("not enough vacation days: %d requested, %d remaining",
			absence.Workdays(), employee.RemainingVacationDays())
	}

	if err := s.absenceRepo.Create(absence); err != nil {
		s.logger.WithError(err).Error("Failed to create absence")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": absence.EmployeeID,
		"type":        absence.Type,
		"status":      absence.Status,
	}).Info("Absence submitted")
	s.notify(fmt.Sprintf("Neuer Antrag: %s, %s %s - %s",
		employee.DisplayName(), absence.Type,
		absence.StartDate.Format("02.01.2006"), absence.EndDate.Format("02.01.2006")))
	return nil
}

// Approve decides a pending request. Approving a vacation request books its
// workdays against the employee's vacation account.
func (s *AbsenceService) Approve(id uint, approve bool) (*models.Absence, error) {
	absence, err := s.absenceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if absence == nil {
		return nil, fmt.Errorf("absence %d not found", id)
	}
	if absence.Status != models.AbsenceStatusPending {
		return nil, fmt.Errorf("absence %d is not pending", id)
	}

	if approve {
		absence.Status = models.AbsenceStatusApproved
	} else {
		absence.Status = models.AbsenceStatusRejected
	}
	if err := s.absenceRepo.Update(absence); err != nil {
		return nil, err
	}

	if approve && absence.CountsAgainstVacation() {
		if err := s.bookVacationDays(absence); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"id":     absence.ID,
		"status": absence.Status,
	}).Info("Absence decided")
	s.notify(fmt.Sprintf("Antrag %d: %s", absence.ID, absence.Status))
	return absence, nil
}

func (s *AbsenceService) bookVacationDays(absence *models.Absence) error {
	employee, err := s.employeeRepo.GetByID(absence.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("employee %d not found", absence.EmployeeID)
	}
	employee.VacationDaysTaken += absence.Workdays()
	return s.employeeRepo.Update(employee)
}

// Delete removes a request. Only pending requests may be deleted; decided
// absences stay for the record.
func (s *AbsenceService) Delete(id uint) error {
	absence, err := s.absenceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if absence == nil {
		return fmt.Errorf("absence %d not found", id)
	}
	if absence.Status != models.AbsenceStatusPending {
		return fmt.Errorf("only pending absences can be deleted")
	}
	return s.absenceRepo.Delete(id)
}

func (s *AbsenceService) ListByEmployee(employeeID uint) ([]models.Absence, error) {
	return s.absenceRepo.GetByEmployeeID(employeeID)
}

func (s *AbsenceService) ListPending() ([]models.Absence, error) {
	return s.absenceRepo.GetPending()
}

func (s *AbsenceService) ListEffectiveWindow(start, end time.Time) ([]models.Absence, error) {
	return s.absenceRepo.GetEffectiveWindow(start, end)
}

func (s *AbsenceService) notify(text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(text); err != nil {
		s.logger.WithError(err).Warn("Notification failed")
	}
}
