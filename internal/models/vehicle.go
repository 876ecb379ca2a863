package models

import "time"

type Vehicle struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LicensePlate string    `gorm:"column:kennzeichen;uniqueIndex;not null" json:"kennzeichen"`
	Label        string    `json:"label"`
	OdometerKm   float64   `gorm:"column:odometer_km;not null;default:0" json:"odometer_km"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) IsValid() bool {
	return v.LicensePlate != "" && v.OdometerKm >= 0
}
