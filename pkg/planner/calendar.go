package planner

import "time"

// WeekWindow is the Monday-to-Sunday display window around a reference date,
// tagged with its ISO-8601 week number.
type WeekWindow struct {
	Year   int // ISO year, differs from the calendar year around new year
	Week   int
	Monday time.Time
	Sunday time.Time
}

// WeekOf computes the week window containing ref. Sunday counts as weekday 7,
// so the window always starts on the preceding Monday.
func WeekOf(ref time.Time) WeekWindow {
	d := DateOnly(ref)
	year, week := d.ISOWeek()
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := d.AddDate(0, 0, 1-weekday)
	return WeekWindow{
		Year:   year,
		Week:   week,
		Monday: monday,
		Sunday: monday.AddDate(0, 0, 6),
	}
}

// Workdays counts the Monday-to-Friday days in the closed interval
// [start, end]. Used for vacation-day accounting; public holidays are not
// considered, matching the paper process this replaces.
func Workdays(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// MonthGrid lays out the month containing ref as a flat sequence of cells for
// a Monday-first calendar: nil cells pad the first week so day 1 sits under
// its weekday column, then one cell per day of the month. No trailing padding.
func MonthGrid(ref time.Time) []*time.Time {
	first := Date(ref.Year(), ref.Month(), 1)
	lastDay := first.AddDate(0, 1, -1).Day()

	weekday := int(first.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	cells := make([]*time.Time, 0, weekday-1+lastDay)
	for i := 1; i < weekday; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= lastDay; day++ {
		d := Date(ref.Year(), ref.Month(), day)
		cells = append(cells, &d)
	}
	return cells
}
