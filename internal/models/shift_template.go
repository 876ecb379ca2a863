package models

import (
	"time"

	"github.com/Rawfaux/Haustechnik/pkg/planner"
)

// ShiftTemplate is static reference data: a named shift with fixed times,
// e.g. "Frühschicht" 06:00-14:00. Loaded once per session by the planner
// views, never derived.
type ShiftTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	StartTime string    `gorm:"column:start_time;type:varchar(8);not null" json:"start_time"`
	EndTime   string    `gorm:"column:end_time;type:varchar(8);not null" json:"end_time"`
	Color     string    `gorm:"type:varchar(20)" json:"color"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShiftTemplate) TableName() string {
	return "shift_templates"
}

func (t *ShiftTemplate) IsValid() bool {
	return t.Name != "" && t.StartTime != "" && t.EndTime != ""
}

// Planner converts the row into the core library's template value.
func (t *ShiftTemplate) Planner() planner.Template {
	return planner.Template{
		ID:        t.ID,
		Name:      t.Name,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Color:     t.Color,
	}
}

// PlannerTemplates converts a template list for the core library.
func PlannerTemplates(templates []ShiftTemplate) []planner.Template {
	out := make([]planner.Template, 0, len(templates))
	for i := range templates {
		out = append(out, templates[i].Planner())
	}
	return out
}
