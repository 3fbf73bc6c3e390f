package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizonlabs/media-analytics-go/internal/models"
)

func aggRec(partner, channel, campaign, yearWeek string, spend, sales, totalWeek float64, impressions, clicks int64) models.Record {
	return models.Record{
		Partner:        partner,
		Channel:        channel,
		Campaign:       campaign,
		YearWeek:       yearWeek,
		Spend:          spend,
		Sales:          sales,
		TotalSalesWeek: totalWeek,
		Impressions:    impressions,
		Clicks:         clicks,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	got := Aggregate(nil, []string{models.DimPartner})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAggregateNoGroupFieldsYieldsSingleRow(t *testing.T) {
	recs := []models.Record{
		aggRec("Google", "Search", "c1", "2025-W02", 100, 400, 1000, 10000, 100),
		aggRec("Meta", "Social", "c2", "2025-W02", 200, 500, 800, 20000, 150),
	}
	rows := Aggregate(recs, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 300.0, rows[0].Spend)
	assert.Equal(t, 900.0, rows[0].Sales)
	assert.Equal(t, int64(30000), rows[0].Impressions)
	assert.Equal(t, 2, rows[0].UniquePartners)
	assert.Equal(t, 2, rows[0].RecordCount)
	assert.Equal(t, 1, rows[0].WeekCount)
}

func TestPeriodTotalSalesDeduplicatedPerWeek(t *testing.T) {
	// three rows in the same week all carry the same weekly total
	recs := []models.Record{
		aggRec("Google", "Search", "c1", "2025-W02", 10, 20, 500, 0, 0),
		aggRec("Google", "Display", "c2", "2025-W02", 10, 20, 500, 0, 0),
		aggRec("Google", "Video", "c3", "2025-W02", 10, 20, 500, 0, 0),
		aggRec("Google", "Search", "c1", "2025-W03", 10, 20, 600, 0, 0),
	}
	rows := Aggregate(recs, []string{models.DimPartner})
	require.Len(t, rows, 1)
	assert.Equal(t, 1100.0, rows[0].TotalSalesPeriod, "500 once for W02 plus 600 for W03, not 3x500")
	assert.Equal(t, 2, rows[0].WeekCount)
}

func TestAggregateGroupingCompleteness(t *testing.T) {
	recs := []models.Record{
		aggRec("Google", "Search", "c1", "2025-W02", 1, 0, 0, 0, 0),
		aggRec("Google", "Display", "c1", "2025-W02", 1, 0, 0, 0, 0),
		aggRec("Meta", "Social", "c2", "2025-W03", 1, 0, 0, 0, 0),
		aggRec("Meta", "Social", "c3", "2025-W03", 1, 0, 0, 0, 0),
	}
	rows := Aggregate(recs, []string{models.DimPartner, models.DimChannel})
	require.Len(t, rows, 3)

	total := 0
	for _, row := range rows {
		total += row.RecordCount
	}
	assert.Equal(t, len(recs), total, "every input row lands in exactly one group")
}

func TestAggregateRatioGuards(t *testing.T) {
	recs := []models.Record{
		aggRec("Google", "Search", "c1", "2025-W02", 0, 100, 0, 0, 0),
	}
	rows := Aggregate(recs, nil)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].ROAS, "spend 0 -> roas 0")
	assert.Zero(t, rows[0].CTR, "impressions 0 -> ctr 0")
	assert.Zero(t, rows[0].CPM, "impressions 0 -> cpm 0")
	assert.Zero(t, rows[0].Effectiveness, "impressions 0 -> effectiveness 0")
	assert.Zero(t, rows[0].CPC, "clicks 0 -> cpc 0")
}

func TestAggregateDerivedRatios(t *testing.T) {
	recs := []models.Record{
		aggRec("Google", "Search", "c1", "2025-W02", 100, 400, 1000, 10000, 100),
	}
	rows := Aggregate(recs, []string{models.DimPartner})
	require.Len(t, rows, 1)

	assert.InDelta(t, 4.0, rows[0].ROAS, 1e-9)
	assert.InDelta(t, 0.01, rows[0].CTR, 1e-9)
	assert.InDelta(t, 1.0, rows[0].CPC, 1e-9)
	assert.InDelta(t, 10.0, rows[0].CPM, 1e-9)
	assert.InDelta(t, 0.04, rows[0].Effectiveness, 1e-9)
	assert.Equal(t, "Google", rows[0].Partner)
	assert.Empty(t, rows[0].Channel, "ungrouped dimensions stay unset")
}

func TestAggregateKeyNoSeparatorCollision(t *testing.T) {
	recs := []models.Record{
		aggRec("a|b", "c", "x", "2025-W02", 1, 0, 0, 0, 0),
		aggRec("a", "b|c", "x", "2025-W02", 1, 0, 0, 0, 0),
	}
	rows := Aggregate(recs, []string{models.DimPartner, models.DimChannel})
	assert.Len(t, rows, 2, "values containing separators must not merge groups")
}
