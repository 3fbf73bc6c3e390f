package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizonlabs/media-analytics-go/internal/models"
)

func cmpRec(yearWeek string, year, week int) models.Record {
	return models.Record{YearWeek: yearWeek, Year: year, Week: week}
}

func TestBuildWindows(t *testing.T) {
	recs := []models.Record{
		cmpRec("2024-W04", 2024, 4),
		cmpRec("2025-W02", 2025, 2),
		cmpRec("2025-W03", 2025, 3),
		cmpRec("2025-W04", 2025, 4),
		cmpRec("2025-W05", 2025, 5),
	}

	w := BuildWindows(recs, 2)

	assert.Equal(t, []string{"2025-W05", "2025-W04"}, w.CurrentWeeks)
	assert.Equal(t, []string{"2025-W03", "2025-W02"}, w.PreviousWeeks)
	assert.Len(t, w.Current, 2)
	assert.Len(t, w.Previous, 2)

	assert.Equal(t, []string{"2024-W05", "2024-W04"}, w.TargetWeeks)
	require.Len(t, w.YearOverYear, 1, "only 2024-W04 exists in the data")
	assert.Equal(t, "2024-W04", w.YearOverYear[0].YearWeek)
	assert.Equal(t, []string{"2024-W04"}, w.FoundWeeks)
}

func TestBuildWindowsNoPriorYearData(t *testing.T) {
	recs := []models.Record{
		cmpRec("2025-W02", 2025, 2),
		cmpRec("2025-W03", 2025, 3),
	}
	w := BuildWindows(recs, 2)
	assert.Empty(t, w.YearOverYear)
	assert.Empty(t, w.FoundWeeks)
	assert.Equal(t, []string{"2024-W03", "2024-W02"}, w.TargetWeeks)
}

func TestBuildWindowsPeriodLargerThanData(t *testing.T) {
	recs := []models.Record{
		cmpRec("2025-W02", 2025, 2),
		cmpRec("2025-W03", 2025, 3),
	}
	w := BuildWindows(recs, 10)
	assert.Len(t, w.Current, 2)
	assert.Empty(t, w.Previous)
}

func TestPriorYearWeek(t *testing.T) {
	got, ok := PriorYearWeek("2024-W10")
	require.True(t, ok)
	assert.Equal(t, "2023-W10", got)

	_, ok = PriorYearWeek("garbage")
	assert.False(t, ok)
}

func TestChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"plain increase", 110, 100, 10},
		{"plain decrease", 80, 100, -20},
		{"zero previous with positive current", 50, 0, 100},
		{"zero previous with zero current", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Change(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestPercentagePoints(t *testing.T) {
	assert.InDelta(t, 5.0, PercentagePoints(0.25, 0.20), 1e-9)
	assert.InDelta(t, -3.0, PercentagePoints(0.17, 0.20), 1e-9)
}
