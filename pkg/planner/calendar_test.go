package planner

import (
	"testing"
	"time"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		wantYear int
		wantWeek int
		monday   time.Time
		sunday   time.Time
	}{
		{
			name: "monday january first",
			ref:  Date(2024, time.January, 1),
			wantYear: 2024, wantWeek: 1,
			monday: Date(2024, time.January, 1),
			sunday: Date(2024, time.January, 7),
		},
		{
			name: "sunday new year belongs to previous iso year",
			ref:  Date(2023, time.January, 1),
			wantYear: 2022, wantWeek: 52,
			monday: Date(2022, time.December, 26),
			sunday: Date(2023, time.January, 1),
		},
		{
			name: "midweek reference",
			ref:  Date(2024, time.March, 6),
			wantYear: 2024, wantWeek: 10,
			monday: Date(2024, time.March, 4),
			sunday: Date(2024, time.March, 10),
		},
		{
			name: "time of day is ignored",
			ref:  time.Date(2024, time.March, 6, 23, 15, 0, 0, time.UTC),
			wantYear: 2024, wantWeek: 10,
			monday: Date(2024, time.March, 4),
			sunday: Date(2024, time.March, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekOf(tt.ref)
			if got.Year != tt.wantYear || got.Week != tt.wantWeek {
				t.Errorf("week = %d/W%d, want %d/W%d", got.Year, got.Week, tt.wantYear, tt.wantWeek)
			}
			if !got.Monday.Equal(tt.monday) {
				t.Errorf("monday = %v, want %v", got.Monday, tt.monday)
			}
			if !got.Sunday.Equal(tt.sunday) {
				t.Errorf("sunday = %v, want %v", got.Sunday, tt.sunday)
			}
		})
	}
}

func TestWorkdays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"full week", Date(2024, time.March, 4), Date(2024, time.March, 10), 5},
		{"weekend only", Date(2024, time.March, 9), Date(2024, time.March, 10), 0},
		{"single workday", Date(2024, time.March, 6), Date(2024, time.March, 6), 1},
		{"two weeks", Date(2024, time.March, 4), Date(2024, time.March, 17), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Workdays(tt.start, tt.end); got != tt.want {
				t.Errorf("Workdays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name       string
		ref        time.Time
		wantBlanks int
		wantDays   int
	}{
		{"leap february starting thursday", Date(2024, time.February, 1), 3, 29},
		{"month starting monday", Date(2024, time.April, 15), 0, 30},
		{"month starting sunday", Date(2024, time.September, 1), 6, 30},
		{"non-leap february", Date(2023, time.February, 10), 2, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := MonthGrid(tt.ref)
			if len(cells) != tt.wantBlanks+tt.wantDays {
				t.Fatalf("grid length = %d, want %d", len(cells), tt.wantBlanks+tt.wantDays)
			}
			for i := 0; i < tt.wantBlanks; i++ {
				if cells[i] != nil {
					t.Errorf("cell %d should be blank", i)
				}
			}
			for i := tt.wantBlanks; i < len(cells); i++ {
				if cells[i] == nil {
					t.Fatalf("cell %d should be a date", i)
				}
				if got := cells[i].Day(); got != i-tt.wantBlanks+1 {
					t.Errorf("cell %d = day %d, want %d", i, got, i-tt.wantBlanks+1)
				}
			}
		})
	}
}
