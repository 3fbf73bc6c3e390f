package analytics

import (
	"strconv"
	"strings"

	"github.com/horizonlabs/media-analytics-go/internal/models"
)

// Windows holds the three aligned record subsets used for period
// comparisons over a current window of n weeks.
type Windows struct {
	Current      []models.Record
	Previous     []models.Record
	YearOverYear []models.Record

	// Week keys, most recent first for Current/Previous. TargetWeeks are the
	// prior-year keys the YoY lookup asked for; FoundWeeks (ascending) are
	// the ones the dataset actually had.
	CurrentWeeks  []string
	PreviousWeeks []string
	TargetWeeks   []string
	FoundWeeks    []string
}

// BuildWindows slices records into the current window (most recent n
// distinct weeks), the n weeks immediately before it, and the prior-year
// counterpart of the current window. Weeks missing from the prior year are
// simply absent from the YoY subset.
func BuildWindows(records []models.Record, n int) Windows {
	weeks := DistinctWeeks(records)
	w := Windows{
		CurrentWeeks:  SliceWeeks(weeks, 0, n),
		PreviousWeeks: SliceWeeks(weeks, n, 2*n),
	}
	w.Current = FilterByWeeks(records, w.CurrentWeeks)
	w.Previous = FilterByWeeks(records, w.PreviousWeeks)

	for _, wk := range w.CurrentWeeks {
		if prior, ok := PriorYearWeek(wk); ok {
			w.TargetWeeks = append(w.TargetWeeks, prior)
		}
	}
	w.YearOverYear = FilterByWeeks(records, w.TargetWeeks)
	w.FoundWeeks = WeeksPresent(w.YearOverYear)
	return w
}

// PriorYearWeek maps a yearWeek key to the same week number one year
// earlier, e.g. "2024-W10" to "2023-W10".
func PriorYearWeek(yearWeek string) (string, bool) {
	year, week, ok := splitYearWeek(yearWeek)
	if !ok {
		return "", false
	}
	return FormatYearWeek(year-1, week), true
}

func splitYearWeek(key string) (year, week int, ok bool) {
	parts := strings.SplitN(key, "-W", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, week, true
}

// Change returns the percentage change from previous to current. A zero
// previous value degrades to +100 when current is positive, 0 otherwise.
func Change(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// PercentagePoints returns the movement between two proportions expressed
// in percentage points. Distinct from Change: a contribution going from
// 0.20 to 0.25 moved +5pts, not +25%.
func PercentagePoints(current, previous float64) float64 {
	return (current - previous) * 100
}
