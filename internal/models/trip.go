package models

import "time"

// Trip is one logbook entry. A trip is started with the vehicle's current
// odometer reading and completed with the end reading; the vehicle's odometer
// advances when the trip ends.
type Trip struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VehicleID  uint      `gorm:"not null;index" json:"vehicle_id"`
	DriverID   uint      `gorm:"not null;index" json:"driver_id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	StartKm    float64   `gorm:"column:start_km;not null" json:"start_km"`
	EndKm      *float64  `gorm:"column:end_km" json:"end_km"`
	Purpose    string    `gorm:"type:varchar(20);not null" json:"purpose"`
	StartPlace string    `gorm:"column:start_location" json:"start_location"`
	EndPlace   string    `gorm:"column:end_location" json:"end_location"`
	Notes      string    `json:"notes"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Vehicle Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle"`
	Driver  Employee `gorm:"foreignKey:DriverID" json:"driver"`
}

func (Trip) TableName() string {
	return "trips"
}

const (
	TripPurposeBusiness = "geschaeftlich"
	TripPurposePrivate  = "privat"
)

const (
	TripStatusActive    = "active"
	TripStatusCompleted = "completed"
)

func (t *Trip) IsActive() bool {
	return t.Status == TripStatusActive && t.EndKm == nil
}

// DistanceKm returns the driven distance, zero while the trip is active.
func (t *Trip) DistanceKm() float64 {
	if t.EndKm == nil {
		return 0
	}
	return *t.EndKm - t.StartKm
}

func (t *Trip) IsValid() bool {
	if t.VehicleID == 0 || t.DriverID == 0 || t.Date.IsZero() {
		return false
	}
	if t.StartKm < 0 {
		return false
	}
	if t.EndKm != nil && *t.EndKm <= t.StartKm {
		return false
	}
	if t.Purpose != TripPurposeBusiness && t.Purpose != TripPurposePrivate {
		return false
	}
	return true
}
