package analytics

import (
	"strconv"
	"strings"

	"github.com/horizonlabs/media-analytics-go/internal/models"
)

// Aggregate groups records by the ordered list of dimension fields and
// returns one summary row per distinct combination, in first-seen order.
// Grouping by no fields yields a single row covering the whole input, or no
// rows when the input is empty. It never fails: empty in, empty out.
func Aggregate(records []models.Record, groupBy []string) []models.AggRow {
	if len(records) == 0 {
		return []models.AggRow{}
	}

	groups := make(map[string][]models.Record)
	var order []string
	for _, r := range records {
		k := groupKey(r, groupBy)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := make([]models.AggRow, 0, len(order))
	for _, k := range order {
		out = append(out, summarize(groups[k], groupBy))
	}
	return out
}

// groupKey length-prefixes every dimension value, so no separator character
// appearing inside a value can make two distinct combinations collide.
func groupKey(r models.Record, fields []string) string {
	var b strings.Builder
	for _, f := range fields {
		v := r.Dim(f)
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}

func summarize(rows []models.Record, groupBy []string) models.AggRow {
	var agg models.AggRow
	for _, f := range groupBy {
		agg.SetDim(f, rows[0].Dim(f))
	}

	seenWeeks := make(map[string]struct{})
	campaigns := make(map[string]struct{})
	partners := make(map[string]struct{})
	channels := make(map[string]struct{})
	tactics := make(map[string]struct{})

	for _, r := range rows {
		agg.Spend += r.Spend
		agg.Impressions += r.Impressions
		agg.Clicks += r.Clicks
		agg.Sales += r.Sales

		// total-sales-week repeats on every row of a week; count it once.
		if _, ok := seenWeeks[r.YearWeek]; !ok {
			seenWeeks[r.YearWeek] = struct{}{}
			agg.TotalSalesPeriod += r.TotalSalesWeek
		}

		campaigns[r.Campaign] = struct{}{}
		partners[r.Partner] = struct{}{}
		channels[r.Channel] = struct{}{}
		tactics[r.Tactic] = struct{}{}
	}

	imp := float64(agg.Impressions)
	clk := float64(agg.Clicks)
	agg.ROAS = safeDiv(agg.Sales, agg.Spend)
	agg.CTR = safeDiv(clk, imp)
	agg.CPC = safeDiv(agg.Spend, clk)
	agg.CPM = safeDiv(agg.Spend, imp) * 1000
	agg.Effectiveness = safeDiv(agg.Sales, imp)

	agg.UniqueCampaigns = len(campaigns)
	agg.UniquePartners = len(partners)
	agg.UniqueChannels = len(channels)
	agg.UniqueTactics = len(tactics)
	agg.RecordCount = len(rows)
	agg.WeekCount = len(seenWeeks)
	return agg
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
