package planner

import (
	"fmt"
	"sort"
)

// Compact merges the daily records of each owner into contiguous date ranges.
// A new range starts whenever the next record is not exactly one calendar day
// after the previous one. Input order does not matter; the result is sorted by
// start date. Duplicate (owner, date) pairs are rejected, they indicate a
// broken upstream invariant.
func Compact(records []Record) ([]Range, error) {
	byOwner := make(map[uint][]Record)
	owners := make([]uint, 0)
	for _, rec := range records {
		rec.Date = DateOnly(rec.Date)
		if _, ok := byOwner[rec.OwnerID]; !ok {
			owners = append(owners, rec.OwnerID)
		}
		byOwner[rec.OwnerID] = append(byOwner[rec.OwnerID], rec)
	}

	var result []Range
	for _, owner := range owners {
		group := byOwner[owner]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		current := Range{
			OwnerID: owner,
			Start:   group[0].Date,
			End:     group[0].Date,
			Records: []Record{group[0]},
		}
		for _, rec := range group[1:] {
			if rec.Date.Equal(current.End) {
				return nil, fmt.Errorf("duplicate record for owner %d on %s",
					owner, rec.Date.Format("2006-01-02"))
			}
			if rec.Date.Equal(current.End.AddDate(0, 0, 1)) {
				current.End = rec.Date
				current.Records = append(current.Records, rec)
				continue
			}
			result = append(result, current)
			current = Range{
				OwnerID: owner,
				Start:   rec.Date,
				End:     rec.Date,
				Records: []Record{rec},
			}
		}
		result = append(result, current)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})
	return result, nil
}
