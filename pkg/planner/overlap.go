package planner

import (
	"fmt"
	"time"
)

// FindOverlap returns the first absence of the given owner that intersects the
// closed interval [start, end], or nil when none does. Boundaries are
// inclusive on both sides: a shift ending on the day an absence starts still
// counts as an overlap. This is an advisory check, the caller decides whether
// to block or merely warn.
func FindOverlap(ownerID uint, start, end time.Time, absences []AbsenceSpan) (*AbsenceSpan, error) {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("invalid interval: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	for i := range absences {
		a := &absences[i]
		if a.OwnerID != ownerID {
			continue
		}
		if !DateOnly(a.Start).After(end) && !DateOnly(a.End).Before(start) {
			return a, nil
		}
	}
	return nil, nil
}
