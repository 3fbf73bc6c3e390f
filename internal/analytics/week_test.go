package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekKeyDerivation(t *testing.T) {
	tests := []struct {
		date     string
		wantYear int
		wantWeek int
		wantKey  string
	}{
		// Jan 1 2025 falls on a Wednesday
		{"1/1/2025", 2025, 1, "2025-W01"},
		{"1/6/2025", 2025, 2, "2025-W02"},
		{"1/13/2025", 2025, 3, "2025-W03"},
		// Jan 1 2024 falls on a Monday
		{"1/8/2024", 2024, 2, "2024-W02"},
		{"12/31/2025", 2025, 53, "2025-W53"},
		// zero-padded input parses the same as unpadded
		{"01/06/2025", 2025, 2, "2025-W02"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseWeekDate(tt.date)
			require.NoError(t, err)

			year, week, key := YearWeekOf(d)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantWeek, week)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestWeekKeyDeterminism(t *testing.T) {
	d, err := ParseWeekDate("3/4/2024")
	require.NoError(t, err)

	_, _, first := YearWeekOf(d)
	_, _, second := YearWeekOf(d)
	assert.Equal(t, first, second)
}

func TestParseWeekDateRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "2024-03-04", "13/40/2024", "notadate"} {
		_, err := ParseWeekDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatYearWeekZeroPads(t *testing.T) {
	assert.Equal(t, "2024-W07", FormatYearWeek(2024, 7))
	assert.Equal(t, "2024-W52", FormatYearWeek(2024, 52))
}
