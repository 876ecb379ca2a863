package planner

import (
	"testing"
	"time"
)

var testTemplates = []Template{
	{ID: 1, Name: "Frühschicht", StartTime: "06:00", EndTime: "14:00"},
	{ID: 2, Name: "Spätschicht", StartTime: "14:00", EndTime: "22:00"},
	{ID: 3, Name: "Nachtschicht", StartTime: "22:00", EndTime: "06:00"},
	{ID: 4, Name: "Bereitschaft", StartTime: "00:00", EndTime: "23:59"},
}

func TestMatchStartTime(t *testing.T) {
	tests := []struct {
		startTime string
		wantID    uint
	}{
		{"06:00", 1},
		{"06:00:00", 1}, // seconds are truncated
		{"14:00", 2},
		{"07:30", 0},
		{"", 0},
	}
	for _, tt := range tests {
		got := MatchStartTime(tt.startTime, testTemplates)
		switch {
		case tt.wantID == 0 && got != nil:
			t.Errorf("MatchStartTime(%q) = %q, want none", tt.startTime, got.Name)
		case tt.wantID != 0 && (got == nil || got.ID != tt.wantID):
			t.Errorf("MatchStartTime(%q) = %v, want template %d", tt.startTime, got, tt.wantID)
		}
	}
}

func TestMatchLabel(t *testing.T) {
	tests := []struct {
		label  string
		wantID uint
	}{
		{"frühschicht", 1},       // exact name, case-insensitive
		{"Frueh", 1},             // ASCII spelling
		{"Spaetschicht Tausch", 2},
		{"spät", 2},
		{"Bereitschaftsdienst", 4},
		{"nachtdienst", 3},
		{"wochenende", 0},
		{"", 0},
	}
	for _, tt := range tests {
		got := MatchLabel(tt.label, testTemplates)
		switch {
		case tt.wantID == 0 && got != nil:
			t.Errorf("MatchLabel(%q) = %q, want none", tt.label, got.Name)
		case tt.wantID != 0 && (got == nil || got.ID != tt.wantID):
			t.Errorf("MatchLabel(%q) = %v, want template %d", tt.label, got, tt.wantID)
		}
	}
}

func TestSortTemplatesStandbyFirst(t *testing.T) {
	sorted := SortTemplates(testTemplates)
	if sorted[0].Name != "Bereitschaft" {
		t.Errorf("expected Bereitschaft first, got %q", sorted[0].Name)
	}
	if sorted[1].Name != "Frühschicht" || sorted[2].Name != "Spätschicht" || sorted[3].Name != "Nachtschicht" {
		t.Errorf("expected remaining templates by start time, got %q, %q, %q",
			sorted[1].Name, sorted[2].Name, sorted[3].Name)
	}
	// Input must stay untouched.
	if testTemplates[0].Name != "Frühschicht" {
		t.Error("SortTemplates mutated its input")
	}
}

func TestGroupByTemplate(t *testing.T) {
	records := []Record{
		{OwnerID: 1, Date: Date(2024, time.March, 4), StartTime: "06:00"},
		{OwnerID: 1, Date: Date(2024, time.March, 5), StartTime: "06:00"},
		{OwnerID: 2, Date: Date(2024, time.March, 4), StartTime: "14:00"},
		{OwnerID: 3, Date: Date(2024, time.March, 4), StartTime: "09:15"}, // no template
	}
	groups, err := GroupByTemplate(records, testTemplates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != len(testTemplates) {
		t.Fatalf("expected %d groups, got %d", len(testTemplates), len(groups))
	}

	byName := make(map[string]TemplateGroup)
	for _, g := range groups {
		byName[g.Template.Name] = g
	}
	if got := len(byName["Frühschicht"].Ranges); got != 1 {
		t.Errorf("Frühschicht: expected 1 range, got %d", got)
	}
	if got := byName["Frühschicht"].Ranges; len(got) == 1 && got[0].Days() != 2 {
		t.Errorf("Frühschicht range: expected 2 days, got %d", got[0].Days())
	}
	if got := len(byName["Spätschicht"].Ranges); got != 1 {
		t.Errorf("Spätschicht: expected 1 range, got %d", got)
	}
	if got := len(byName["Nachtschicht"].Ranges); got != 0 {
		t.Errorf("Nachtschicht: expected no ranges, got %d", got)
	}
	if groups[0].Template.Name != "Bereitschaft" {
		t.Errorf("expected standby group first, got %q", groups[0].Template.Name)
	}
}
