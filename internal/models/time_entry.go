package models

import (
	"fmt"
	"time"
)

// TimeEntry is one employee's clock-in/clock-out record for one workday.
type TimeEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	WorkDate   time.Time `gorm:"column:work_date;type:date;not null;index" json:"work_date"`

	ClockIn  time.Time  `gorm:"column:clock_in;not null" json:"clock_in"`
	ClockOut *time.Time `gorm:"column:clock_out" json:"clock_out"`

	BreakMinutes    int `gorm:"not null;default:0" json:"break_minutes"`
	TargetMinutes   int `gorm:"not null;default:480" json:"target_minutes"`
	WorkedMinutes   int `gorm:"not null;default:0" json:"worked_minutes"`
	OvertimeMinutes int `gorm:"not null;default:0" json:"overtime_minutes"`

	Status    string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

const (
	TimeEntryStatusActive    = "active"
	TimeEntryStatusCompleted = "completed"
)

// CalculateWorkedMinutes derives the net worked time from the clock times and
// break. Zero while the employee is still clocked in.
func (t *TimeEntry) CalculateWorkedMinutes() int {
	if t.ClockOut == nil || t.ClockOut.IsZero() {
		return 0
	}
	worked := int(t.ClockOut.Sub(t.ClockIn).Minutes()) - t.BreakMinutes
	if worked < 0 {
		return 0
	}
	return worked
}

// UpdateCalculatedFields refreshes the derived columns and advances the
// status once a clock-out time is present.
func (t *TimeEntry) UpdateCalculatedFields() {
	t.WorkedMinutes = t.CalculateWorkedMinutes()
	t.OvertimeMinutes = 0
	if t.WorkedMinutes > t.TargetMinutes {
		t.OvertimeMinutes = t.WorkedMinutes - t.TargetMinutes
	}
	if t.ClockOut != nil && !t.ClockOut.IsZero() {
		t.Status = TimeEntryStatusCompleted
	}
}

func (t *TimeEntry) IsActive() bool {
	return t.Status == TimeEntryStatusActive && t.ClockOut == nil
}

// Duration formats the worked time for display.
func (t *TimeEntry) Duration() string {
	if t.ClockOut == nil {
		return "läuft"
	}
	h := t.WorkedMinutes / 60
	m := t.WorkedMinutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func (t *TimeEntry) IsValid() bool {
	if t.EmployeeID == 0 || t.WorkDate.IsZero() || t.ClockIn.IsZero() {
		return false
	}
	if t.BreakMinutes < 0 || t.TargetMinutes <= 0 {
		return false
	}
	if t.Status != TimeEntryStatusActive && t.Status != TimeEntryStatusCompleted {
		return false
	}
	return true
}
