package models

import (
	"fmt"
	"time"
)

type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PersonalNr   string    `gorm:"column:personal_nr;uniqueIndex" json:"personal_nr"`
	FirstName    string    `gorm:"column:vorname;not null" json:"vorname"`
	LastName     string    `gorm:"column:nachname;not null" json:"nachname"`
	Email        string    `json:"email"`
	CompanyPhone string    `gorm:"column:firma_telefon" json:"firma_telefon"`
	PrivatePhone string    `gorm:"column:telefon_privat" json:"telefon_privat"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	// Vacation-day accounting, in whole days per calendar year.
	VacationDaysYear  int `gorm:"column:urlaubstage_jahr;not null;default:30" json:"urlaubstage_jahr"`
	VacationDaysCarry int `gorm:"column:urlaubstage_vorjahr;not null;default:0" json:"urlaubstage_vorjahr"`
	VacationDaysTaken int `gorm:"column:urlaubstage_genommen;not null;default:0" json:"urlaubstage_genommen"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// DisplayName formats the name list-style, "Nachname, Vorname".
func (e *Employee) DisplayName() string {
	return fmt.Sprintf("%s, %s", e.LastName, e.FirstName)
}

// RemainingVacationDays returns the current entitlement minus taken days.
func (e *Employee) RemainingVacationDays() int {
	return e.VacationDaysYear + e.VacationDaysCarry - e.VacationDaysTaken
}

func (e *Employee) IsValid() bool {
	if e.FirstName == "" || e.LastName == "" {
		return false
	}
	if e.Status != EmployeeStatusActive && e.Status != EmployeeStatusInactive {
		return false
	}
	if e.VacationDaysYear < 0 || e.VacationDaysCarry < 0 || e.VacationDaysTaken < 0 {
		return false
	}
	return true
}
