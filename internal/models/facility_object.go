package models

import "time"

// FacilityObject is a managed building or site. Shifts are assigned to an
// object and the shift plan can be filtered by one.
type FacilityObject struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	ShortName string    `gorm:"column:short_name" json:"short_name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FacilityObject) TableName() string {
	return "objects"
}

func (o *FacilityObject) IsValid() bool {
	return o.Name != ""
}
