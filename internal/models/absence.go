package models

import (
	"time"

	"github.com/Rawfaux/Haustechnik/pkg/planner"
)

// Absence is a leave entry spanning a closed date interval. Requests start as
// pending and are approved or rejected; sick notes enter as confirmed. Only
// approved and confirmed absences reach the planner's overlap check.
type Absence struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	Type       string    `gorm:"column:absence_type;type:varchar(20);not null" json:"absence_type"`
	StartDate  time.Time `gorm:"type:date;not null;index" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null;index" json:"end_date"`
	Reason     string    `json:"reason"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee"`
}

func (Absence) TableName() string {
	return "absences"
}

const (
	AbsenceTypeVacation     = "urlaub"
	AbsenceTypeSick         = "krank"
	AbsenceTypeCompTime     = "fza"
	AbsenceTypeTraining     = "fortbildung"
	AbsenceTypeSpecialLeave = "sonderurlaub"
)

const (
	AbsenceStatusPending   = "pending"
	AbsenceStatusApproved  = "approved"
	AbsenceStatusRejected  = "rejected"
	AbsenceStatusConfirmed = "confirmed"
)

func ValidAbsenceType(t string) bool {
	switch t {
	case AbsenceTypeVacation, AbsenceTypeSick, AbsenceTypeCompTime,
		AbsenceTypeTraining, AbsenceTypeSpecialLeave:
		return true
	}
	return false
}

// IsEffective reports whether the absence blocks scheduling.
func (a *Absence) IsEffective() bool {
	return a.Status == AbsenceStatusApproved || a.Status == AbsenceStatusConfirmed
}

// CountsAgainstVacation reports whether approving this absence books workdays
// against the employee's vacation account.
func (a *Absence) CountsAgainstVacation() bool {
	return a.Type == AbsenceTypeVacation
}

// Workdays counts the Mon-Fri days covered by the absence.
func (a *Absence) Workdays() int {
	return planner.Workdays(a.StartDate, a.EndDate)
}

func (a *Absence) IsValid() bool {
	if a.EmployeeID == 0 || a.StartDate.IsZero() || a.EndDate.IsZero() {
		return false
	}
	if a.EndDate.Before(a.StartDate) {
		return false
	}
	return ValidAbsenceType(a.Type)
}

// Span converts the row into a core-library absence interval.
func (a *Absence) Span() planner.AbsenceSpan {
	return planner.AbsenceSpan{
		OwnerID: a.EmployeeID,
		Start:   a.StartDate,
		End:     a.EndDate,
		Type:    a.Type,
		Status:  a.Status,
		RefID:   a.ID,
	}
}

// AbsenceSpans converts effective absences for the core library.
func AbsenceSpans(absences []Absence) []planner.AbsenceSpan {
	spans := make([]planner.AbsenceSpan, 0, len(absences))
	for i := range absences {
		spans = append(spans, absences[i].Span())
	}
	return spans
}
