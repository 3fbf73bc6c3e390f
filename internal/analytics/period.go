package analytics

import (
	"sort"

	"github.com/horizonlabs/media-analytics-go/internal/models"
)

// DistinctWeeks returns the distinct yearWeek keys present in records, most
// recent first. Descending lexicographic order is valid because the key is
// year-prefixed and zero-padded.
func DistinctWeeks(records []models.Record) []string {
	seen := make(map[string]struct{}, len(records))
	var weeks []string
	for _, r := range records {
		if _, ok := seen[r.YearWeek]; ok {
			continue
		}
		seen[r.YearWeek] = struct{}{}
		weeks = append(weeks, r.YearWeek)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	return weeks
}

// WeeksPresent returns the distinct yearWeek keys in ascending order.
func WeeksPresent(records []models.Record) []string {
	weeks := DistinctWeeks(records)
	for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
		weeks[i], weeks[j] = weeks[j], weeks[i]
	}
	return weeks
}

// SliceWeeks returns weeks[from:to) with both bounds clamped to the slice.
func SliceWeeks(weeks []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(weeks) {
		to = len(weeks)
	}
	if from >= to {
		return nil
	}
	return weeks[from:to]
}

// FilterByWeeks returns the records whose yearWeek is among keys.
func FilterByWeeks(records []models.Record, keys []string) []models.Record {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if _, ok := set[r.YearWeek]; ok {
			out = append(out, r)
		}
	}
	return out
}

// FilterByPeriod returns the records falling in the most recent n distinct
// weeks of the dataset. When n exceeds the weeks available, everything is
// returned.
func FilterByPeriod(records []models.Record, n int) []models.Record {
	weeks := DistinctWeeks(records)
	return FilterByWeeks(records, SliceWeeks(weeks, 0, n))
}
