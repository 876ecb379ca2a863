package planner

import (
	"testing"
	"time"
)

func rec(owner uint, y int, m time.Month, d int) Record {
	return Record{OwnerID: owner, Date: Date(y, m, d), StartTime: "06:00"}
}

func TestCompactEmpty(t *testing.T) {
	ranges, err := Compact(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 0 {
		t.Fatalf("expected no ranges, got %d", len(ranges))
	}
}

func TestCompactSingleDay(t *testing.T) {
	ranges, err := Compact([]Record{rec(1, 2024, time.March, 8)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	r := ranges[0]
	if !r.Start.Equal(r.End) || !r.Start.Equal(Date(2024, time.March, 8)) {
		t.Errorf("expected single-day range on 2024-03-08, got %v-%v", r.Start, r.End)
	}
	if r.Days() != 1 {
		t.Errorf("expected 1 day, got %d", r.Days())
	}
}

func TestCompactSplitsOnGap(t *testing.T) {
	// Mon-Wed, gap on Thursday, then Friday.
	records := []Record{
		rec(1, 2024, time.March, 5),
		rec(1, 2024, time.March, 8),
		rec(1, 2024, time.March, 4),
		rec(1, 2024, time.March, 6),
	}
	ranges, err := Compact(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	if !ranges[0].Start.Equal(Date(2024, time.March, 4)) || !ranges[0].End.Equal(Date(2024, time.March, 6)) {
		t.Errorf("first range wrong: %v-%v", ranges[0].Start, ranges[0].End)
	}
	if !ranges[1].Start.Equal(Date(2024, time.March, 8)) || !ranges[1].End.Equal(Date(2024, time.March, 8)) {
		t.Errorf("second range wrong: %v-%v", ranges[1].Start, ranges[1].End)
	}
	if len(ranges[0].Records) != 3 || len(ranges[1].Records) != 1 {
		t.Errorf("member counts wrong: %d, %d", len(ranges[0].Records), len(ranges[1].Records))
	}
}

func TestCompactSeparatesOwners(t *testing.T) {
	records := []Record{
		rec(1, 2024, time.March, 4),
		rec(2, 2024, time.March, 5),
		rec(1, 2024, time.March, 5),
		rec(2, 2024, time.March, 6),
	}
	ranges, err := Compact(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	// Sorted by start date: owner 1 starts 03-04, owner 2 starts 03-05.
	if ranges[0].OwnerID != 1 || ranges[1].OwnerID != 2 {
		t.Errorf("owner order wrong: %d, %d", ranges[0].OwnerID, ranges[1].OwnerID)
	}
}

func TestCompactRejectsDuplicates(t *testing.T) {
	records := []Record{
		rec(1, 2024, time.March, 4),
		rec(1, 2024, time.March, 4),
	}
	if _, err := Compact(records); err == nil {
		t.Fatal("expected error for duplicate (owner, date) pair")
	}
}

// Re-compacting the member records of a compaction yields the same ranges, and
// every input record lands in exactly one range.
func TestCompactIdempotentAndTotal(t *testing.T) {
	records := []Record{
		rec(1, 2024, time.March, 4),
		rec(1, 2024, time.March, 5),
		rec(1, 2024, time.March, 6),
		rec(1, 2024, time.March, 8),
		rec(2, 2024, time.March, 6),
	}
	first, err := Compact(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	var members []Record
	for _, r := range first {
		total += r.Days()
		members = append(members, r.Records...)
	}
	if total != len(records) {
		t.Errorf("range days sum to %d, want %d", total, len(records))
	}

	second, err := Compact(members)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("re-compaction changed range count: %d != %d", len(second), len(first))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) ||
			first[i].OwnerID != second[i].OwnerID {
			t.Errorf("range %d differs after re-compaction", i)
		}
	}
}
