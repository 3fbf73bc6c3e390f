package analytics

import (
	"fmt"
	"time"
)

const weekDateLayout = "1/2/2006"

// ParseWeekDate parses the M/D/YYYY week-date column. No timezone handling:
// the value is a plain calendar date.
func ParseWeekDate(s string) (time.Time, error) {
	return time.Parse(weekDateLayout, s)
}

// WeekNumber returns the 1-based week of the year for d, counting weeks as
// seven-day blocks anchored to the weekday of January 1.
func WeekNumber(d time.Time) int {
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSinceStart := d.YearDay() - 1
	n := daysSinceStart + int(jan1.Weekday()) + 1
	return (n + 6) / 7
}

// FormatYearWeek builds the composite time bucket key, e.g. "2024-W07".
func FormatYearWeek(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// YearWeekOf derives the year, week number and composite key for a date.
// Two records sharing a week-date always map to the same key.
func YearWeekOf(d time.Time) (year, week int, yearWeek string) {
	year = d.Year()
	week = WeekNumber(d)
	return year, week, FormatYearWeek(year, week)
}
