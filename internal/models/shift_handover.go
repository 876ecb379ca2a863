package models

import "time"

// ShiftHandover (Wechsel) records a temporary substitution: the replacement
// employee covers the original's shift for a date range. Handovers are shown
// as an overlay on the matching template's week row, they are never merged
// into the compacted shift ranges.
type ShiftHandover struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	ShiftType             string    `gorm:"column:shift_type;not null" json:"shift_type"`
	ObjectID              *uint     `gorm:"index" json:"object_id"`
	OriginalEmployeeID    uint      `gorm:"not null;index" json:"original_employee_id"`
	ReplacementEmployeeID uint      `gorm:"not null;index" json:"replacement_employee_id"`
	StartDate             time.Time `gorm:"column:handover_date;type:date;not null;index" json:"handover_date"`
	EndDate               time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason                string    `gorm:"type:varchar(20);not null" json:"reason"`
	ReasonDetails         string    `json:"reason_details"`
	Status                string    `gorm:"type:varchar(20);not null;default:'approved';index" json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (ShiftHandover) TableName() string {
	return "shift_handovers"
}

const (
	HandoverReasonSickness = "krankheit"
	HandoverReasonPrivate  = "privat"
	HandoverReasonSwap     = "tausch"
)

const (
	HandoverStatusApproved = "approved"
	HandoverStatusDeclined = "declined"
)

func ValidHandoverReason(r string) bool {
	return r == HandoverReasonSickness || r == HandoverReasonPrivate || r == HandoverReasonSwap
}

func (h *ShiftHandover) IsValid() bool {
	if h.OriginalEmployeeID == 0 || h.ReplacementEmployeeID == 0 {
		return false
	}
	if h.OriginalEmployeeID == h.ReplacementEmployeeID {
		return false
	}
	if h.StartDate.IsZero() || h.EndDate.IsZero() || h.EndDate.Before(h.StartDate) {
		return false
	}
	return ValidHandoverReason(h.Reason)
}
