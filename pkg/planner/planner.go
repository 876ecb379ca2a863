// Package planner contains the pure scheduling core of the shift planner:
// compacting daily shift rows into contiguous date ranges, checking proposed
// ranges against absences, classifying rows by shift template and computing
// week/month display windows.
//
// All functions are pure and operate on date-only values (midnight UTC).
// They hold no state and are safe to call concurrently.
package planner

import "time"

// Date builds a date-only value (midnight UTC).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly strips the time-of-day component.
func DateOnly(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Record is one calendar day of one employee's schedule, as stored in the
// shifts table. Compact is called with records of a single kind at a time;
// StartTime is empty for non-shift records.
type Record struct {
	OwnerID   uint
	Date      time.Time
	StartTime string // "HH:MM"
	RefID     uint   // id of the underlying row, kept for range edits
}

// Range is a run of consecutive calendar days for one employee. It is a
// derived view: Records holds every underlying row so callers can delete or
// modify all of them when the range is edited.
type Range struct {
	OwnerID uint
	Start   time.Time
	End     time.Time
	Records []Record
}

// Days returns the length of the range in calendar days.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// AbsenceSpan is an approved absence interval used for overlap checks.
type AbsenceSpan struct {
	OwnerID uint
	Start   time.Time
	End     time.Time
	Type    string
	Status  string
	RefID   uint
}
