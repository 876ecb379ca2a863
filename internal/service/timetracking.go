package service

import (
	"fmt"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"
	"github.com/Rawfaux/Haustechnik/internal/repository"
	"github.com/Rawfaux/Haustechnik/pkg/planner"

	"github.com/sirupsen/logrus"
)

// MonthOverview is the month view of one employee's time tracking: the
// calendar grid for layout, the entries and the summary totals.
type MonthOverview struct {
	Year    int                `json:"year"`
	Month   time.Month         `json:"month"`
	Grid    []*time.Time       `json:"grid"`
	Entries []models.TimeEntry `json:"entries"`
	Summary MonthSummary       `json:"summary"`
}

type MonthSummary struct {
	WorkedMinutes   int `json:"worked_minutes"`
	OvertimeMinutes int `json:"overtime_minutes"`
	BreakMinutes    int `json:"break_minutes"`
	Workdays        int `json:"workdays"`
	TargetMinutes   int `json:"target_minutes"`
}

type TimeTrackingService struct {
	entryRepo repository.TimeEntryRepository
	logger    *logrus.Logger
}

func NewTimeTrackingService(entryRepo repository.TimeEntryRepository) *TimeTrackingService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return &TimeTrackingService{entryRepo: entryRepo, logger: logger}
}

// ClockIn opens a time entry for the given moment's calendar day.
func (s *TimeTrackingService) ClockIn(employeeID uint, at time.Time) (*models.TimeEntry, error) {
	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"clock_in":    at.Format("15:04"),
	}).Info("Employee clocking in")

	active, err := s.entryRepo.GetActiveByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("employee %d is already clocked in", employeeID)
	}

	entry := &models.TimeEntry{
		EmployeeID:    employeeID,
		WorkDate:      planner.DateOnly(at),
		ClockIn:       at,
		TargetMinutes: 480,
		Status:        models.TimeEntryStatusActive,
	}
	if err := s.entryRepo.Create(entry); err != nil {
		s.logger.WithError(err).Error("Failed to create time entry")
		return nil, err
	}
	return entry, nil
}

// ClockOut completes the employee's active entry and computes the derived
// worked/overtime minutes.
func (s *TimeTrackingService) ClockOut(employeeID uint, at time.Time, breakMinutes int, notes string) (*models.TimeEntry, error) {
	entry, err := s.entryRepo.GetActiveByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("employee %d has no active time entry", employeeID)
	}
	if at.Before(entry.ClockIn) {
		return nil, fmt.Errorf("clock-out before clock-in")
	}

	entry.ClockOut = &at
	entry.BreakMinutes = breakMinutes
	if notes != "" {
		entry.Notes = notes
	}
	if err := s.entryRepo.Update(entry); err != nil {
		s.logger.WithError(err).Error("Failed to complete time entry")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id":    employeeID,
		"worked_minutes": entry.WorkedMinutes,
	}).Info("Employee clocked out")
	return entry, nil
}

// Month assembles the employee's month overview. The grid cells come from
// the planner so the view's calendar starts every week on Monday.
func (s *TimeTrackingService) Month(employeeID uint, year int, month time.Month) (*MonthOverview, error) {
	entries, err := s.entryRepo.GetByEmployeeAndMonth(employeeID, year, month)
	if err != nil {
		return nil, err
	}

	summary := MonthSummary{}
	for _, e := range entries {
		summary.WorkedMinutes += e.WorkedMinutes
		summary.OvertimeMinutes += e.OvertimeMinutes
		summary.BreakMinutes += e.BreakMinutes
		if e.Status == models.TimeEntryStatusCompleted {
			summary.Workdays++
		}
	}
	summary.TargetMinutes = summary.Workdays * 480

	return &MonthOverview{
		Year:    year,
		Month:   month,
		Grid:    planner.MonthGrid(planner.Date(year, month, 1)),
		Entries: entries,
		Summary: summary,
	}, nil
}

// Today lists all entries of the given day, newest clock-in first.
func (s *TimeTrackingService) Today(date time.Time) ([]models.TimeEntry, error) {
	return s.entryRepo.GetByDate(date)
}
