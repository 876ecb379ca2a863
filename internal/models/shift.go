package models

import (
	"time"

	"github.com/Rawfaux/Haustechnik/pkg/planner"
)

// Shift is one employee's assignment on one calendar day. Multi-day
// assignments are stored as one row per day and compacted back into ranges
// for display; see pkg/planner.
type Shift struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	ObjectID   uint      `gorm:"index" json:"object_id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime  string    `gorm:"column:start_time;type:varchar(8);not null" json:"start_time"`
	EndTime    string    `gorm:"column:end_time;type:varchar(8);not null" json:"end_time"`
	ShiftType  string    `gorm:"column:shift_type" json:"shift_type"`
	Status     string    `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Employee Employee       `gorm:"foreignKey:EmployeeID" json:"employee"`
	Object   FacilityObject `gorm:"foreignKey:ObjectID" json:"object"`
}

func (Shift) TableName() string {
	return "shifts"
}

const (
	ShiftStatusScheduled = "scheduled"
	ShiftStatusCancelled = "cancelled"
)

func (s *Shift) IsValid() bool {
	if s.EmployeeID == 0 || s.Date.IsZero() {
		return false
	}
	if s.StartTime == "" || s.EndTime == "" {
		return false
	}
	if s.Status != ShiftStatusScheduled && s.Status != ShiftStatusCancelled {
		return false
	}
	return true
}

// PlannerRecord converts the row into a core-library daily record.
func (s *Shift) PlannerRecord() planner.Record {
	return planner.Record{
		OwnerID:   s.EmployeeID,
		Date:      s.Date,
		StartTime: s.StartTime,
		RefID:     s.ID,
	}
}
