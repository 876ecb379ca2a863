package planner

import (
	"sort"
	"strings"
)

// Template is a named shift definition ("Frühschicht" 06:00-14:00). Static
// reference data, loaded once per session and never mutated here.
type Template struct {
	ID        uint
	Name      string
	StartTime string // "HH:MM", longer values are truncated on compare
	EndTime   string
	Color     string
}

// Synonym groups for label matching. Handover rows carry a free-text shift
// label instead of a start time, and legacy data mixes umlauts with their
// ASCII spellings.
var labelTokens = [][]string{
	{"bereit"},
	{"frueh", "früh"},
	{"tag"},
	{"spaet", "spät"},
	{"nacht"},
}

func clipTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// MatchStartTime classifies a shift record by exact start-time comparison,
// truncated to hour and minute. Returns nil when no template matches.
func MatchStartTime(startTime string, templates []Template) *Template {
	want := clipTime(startTime)
	for i := range templates {
		if clipTime(templates[i].StartTime) == want {
			return &templates[i]
		}
	}
	return nil
}

// MatchLabel classifies a free-text shift label against the template names,
// case-insensitively. An exact name match wins; otherwise label and template
// name must share a synonym group. First matching template in iteration order
// is returned; nil when nothing matches.
func MatchLabel(label string, templates []Template) *Template {
	label = strings.ToLower(label)
	for i := range templates {
		name := strings.ToLower(templates[i].Name)
		if label == name {
			return &templates[i]
		}
		for _, group := range labelTokens {
			if containsAny(name, group) && containsAny(label, group) {
				return &templates[i]
			}
		}
	}
	return nil
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// SortTemplates orders templates for display: the standby template
// ("Bereitschaft") first, the rest by ascending start time.
func SortTemplates(templates []Template) []Template {
	sorted := make([]Template, len(templates))
	copy(sorted, templates)
	sort.SliceStable(sorted, func(i, j int) bool {
		iStandby := strings.Contains(strings.ToLower(sorted[i].Name), "bereit")
		jStandby := strings.Contains(strings.ToLower(sorted[j].Name), "bereit")
		if iStandby != jStandby {
			return iStandby
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted
}

// TemplateGroup is one template's slice of the week view.
type TemplateGroup struct {
	Template Template
	Ranges   []Range
}

// GroupByTemplate buckets shift records under their matching template and
// compacts each bucket. Records matching no template are silently dropped;
// templates are assumed to cover all configured shift types. Groups come back
// in display order (see SortTemplates).
func GroupByTemplate(records []Record, templates []Template) ([]TemplateGroup, error) {
	sorted := SortTemplates(templates)
	buckets := make(map[uint][]Record, len(sorted))
	for _, rec := range records {
		if tpl := MatchStartTime(rec.StartTime, sorted); tpl != nil {
			buckets[tpl.ID] = append(buckets[tpl.ID], rec)
		}
	}

	groups := make([]TemplateGroup, 0, len(sorted))
	for _, tpl := range sorted {
		ranges, err := Compact(buckets[tpl.ID])
		if err != nil {
			return nil, err
		}
		groups = append(groups, TemplateGroup{Template: tpl, Ranges: ranges})
	}
	return groups, nil
}
