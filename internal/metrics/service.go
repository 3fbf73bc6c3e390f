package metrics

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/horizonlabs/media-analytics-go/internal/analytics"
	"github.com/horizonlabs/media-analytics-go/internal/models"
	"github.com/horizonlabs/media-analytics-go/internal/store"
)

// Service builds the per-endpoint views over the cached dataset. Every
// method recomputes from the full snapshot; nothing here mutates state.
type Service struct {
	ds *store.Dataset
}

func NewService(ds *store.Dataset) *Service { return &Service{ds: ds} }

// Partners returns one summary row per partner in the period, with ticker
// and media contribution, sorted by descending ROAS.
func (s *Service) Partners(ctx context.Context, period int) (models.PartnersView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.PartnersView{}, err
	}
	cur := analytics.FilterByPeriod(recs, period)

	rows := analytics.Aggregate(cur, []string{models.DimPartner})
	data := make([]models.PartnerSummary, 0, len(rows))
	for _, row := range rows {
		ps := models.PartnerSummary{
			AggRow: row,
			Ticker: analytics.Ticker(row.Partner),
		}
		if row.TotalSalesPeriod > 0 {
			ps.Contribution = row.Sales / row.TotalSalesPeriod * 100
		}
		data = append(data, ps)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].ROAS > data[j].ROAS })

	return models.PartnersView{
		Period:        periodLabel(period),
		TotalPartners: len(data),
		Data:          data,
	}, nil
}

// PartnerTactics breaks the period down by partner and tactic, optionally
// restricted to a single partner, sorted by descending spend.
func (s *Service) PartnerTactics(ctx context.Context, period int, partner string) (models.PartnerTacticsView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.PartnerTacticsView{}, err
	}
	cur := analytics.FilterByPeriod(recs, period)
	if partner != "" {
		filtered := cur[:0:0]
		for _, r := range cur {
			if r.Partner == partner {
				filtered = append(filtered, r)
			}
		}
		cur = filtered
	}

	rows := analytics.Aggregate(cur, []string{models.DimPartner, models.DimTactic})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Spend > rows[j].Spend })

	label := partner
	if label == "" {
		label = "All"
	}
	return models.PartnerTacticsView{Period: periodLabel(period), Partner: label, Data: rows}, nil
}

var trendGroupFields = map[string][]string{
	"week":    {models.DimYearWeek, models.DimWeekDate},
	"channel": {models.DimYearWeek, models.DimWeekDate, models.DimChannel},
	"partner": {models.DimYearWeek, models.DimWeekDate, models.DimPartner},
}

// Trends returns week-bucketed rows in ascending week order, each carrying
// change percentages against the previous row of the same result set.
// Unknown groupBy values coerce to "week".
func (s *Service) Trends(ctx context.Context, period int, groupBy string) (models.TrendsView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.TrendsView{}, err
	}
	fields, ok := trendGroupFields[groupBy]
	if !ok {
		groupBy = "week"
		fields = trendGroupFields[groupBy]
	}

	cur := analytics.FilterByPeriod(recs, period)
	rows := analytics.Aggregate(cur, fields)
	sort.Slice(rows, func(i, j int) bool { return rows[i].YearWeek < rows[j].YearWeek })

	data := make([]models.TrendRow, 0, len(rows))
	for i, row := range rows {
		tr := models.TrendRow{AggRow: row}
		if i > 0 {
			prev := rows[i-1]
			tr.SpendChange = trendChange(row.Spend, prev.Spend)
			tr.ImpressionsChange = trendChange(float64(row.Impressions), float64(prev.Impressions))
			tr.ClicksChange = trendChange(float64(row.Clicks), float64(prev.Clicks))
			tr.SalesChange = trendChange(row.Sales, prev.Sales)
			tr.ROASChange = trendChange(row.ROAS, prev.ROAS)
		}
		data = append(data, tr)
	}

	return models.TrendsView{Period: periodLabel(period), GroupBy: groupBy, Data: data}, nil
}

// Channels builds the channel hierarchy: per-channel aggregate plus its
// subchannel breakdown and top five campaigns by spend.
func (s *Service) Channels(ctx context.Context, period int) (models.ChannelsView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.ChannelsView{}, err
	}
	cur := analytics.FilterByPeriod(recs, period)

	hierarchy := make(map[string]models.ChannelGroup)
	for _, ch := range analytics.Aggregate(cur, []string{models.DimChannel}) {
		var channelRows []models.Record
		for _, r := range cur {
			if r.Channel == ch.Channel {
				channelRows = append(channelRows, r)
			}
		}

		campaigns := analytics.Aggregate(channelRows, []string{models.DimChannel, models.DimCampaign})
		sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].Spend > campaigns[j].Spend })
		if len(campaigns) > 5 {
			campaigns = campaigns[:5]
		}

		hierarchy[ch.Channel] = models.ChannelGroup{
			AggRow:       ch,
			Subchannels:  analytics.Aggregate(channelRows, []string{models.DimChannel, models.DimSubchannel}),
			TopCampaigns: campaigns,
		}
	}

	return models.ChannelsView{Period: periodLabel(period), Data: hierarchy}, nil
}

// GlobalMetrics assembles the dashboard KPI view: current-period summary,
// insights, and PoP/YoY comparisons.
func (s *Service) GlobalMetrics(ctx context.Context, period int) (models.GlobalMetricsView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.GlobalMetricsView{}, err
	}
	w := analytics.BuildWindows(recs, period)

	curSum := firstOrZero(analytics.Aggregate(w.Current, nil))
	popSum := firstOrZero(analytics.Aggregate(w.Previous, nil))
	yoySum := firstOrZero(analytics.Aggregate(w.YearOverYear, nil))

	curYear := latestYear(w.CurrentWeeks)

	view := models.GlobalMetricsView{
		Period:   periodLabel(period),
		Summary:  curSum,
		Insights: s.insights(w.Current, curSum),
		PeriodOverPeriod: models.PeriodComparison{
			Current:  snapshot(periodLabel(period), len(w.CurrentWeeks), curSum),
			Previous: snapshot(fmt.Sprintf("Previous %d weeks", period), len(w.PreviousWeeks), popSum),
			Changes:  changeSet(curSum, popSum),
		},
		YearOverYear: models.PeriodComparison{
			Current:  snapshot(fmt.Sprintf("Last %d weeks (%d)", period, curYear), len(w.CurrentWeeks), curSum),
			Previous: snapshot(fmt.Sprintf("Same %d weeks (%d)", period, curYear-1), len(w.FoundWeeks), yoySum),
			Changes:  changeSet(curSum, yoySum),
		},
	}
	return view, nil
}

// Comparisons exposes the raw period windows: week lists, ranges, record
// counts and whole-window summaries for current, PoP and YoY.
func (s *Service) Comparisons(ctx context.Context, period int) (models.ComparisonsView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.ComparisonsView{}, err
	}
	w := analytics.BuildWindows(recs, period)

	return models.ComparisonsView{
		PeriodWeeks: period,
		Current: models.PeriodDetail{
			Weeks:       w.CurrentWeeks,
			WeekRange:   weekRange(w.CurrentWeeks),
			RecordCount: len(w.Current),
			Summary:     firstOrZero(analytics.Aggregate(w.Current, nil)),
		},
		PeriodOverPeriod: models.PeriodDetail{
			Weeks:       w.PreviousWeeks,
			WeekRange:   weekRange(w.PreviousWeeks),
			RecordCount: len(w.Previous),
			Summary:     firstOrZero(analytics.Aggregate(w.Previous, nil)),
		},
		YearOverYear: models.YoYDetail{
			TargetWeeks: w.TargetWeeks,
			FoundWeeks:  w.FoundWeeks,
			RecordCount: len(w.YearOverYear),
			Summary:     firstOrZero(analytics.Aggregate(w.YearOverYear, nil)),
		},
	}, nil
}

// Tickers lists every partner in the dataset with its synthesized symbol,
// alphabetically by partner.
func (s *Service) Tickers(ctx context.Context) (models.TickersView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.TickersView{}, err
	}
	partners := distinctValues(recs, models.DimPartner)

	entries := make([]models.TickerEntry, 0, len(partners))
	for _, p := range partners {
		entries = append(entries, models.TickerEntry{Partner: p, Ticker: analytics.Ticker(p)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Partner < entries[j].Partner })
	return models.TickersView{Tickers: entries}, nil
}

// Metadata describes the dataset: distinct dimension values, date coverage
// and the period presets the frontend offers.
func (s *Service) Metadata(ctx context.Context) (models.MetadataView, error) {
	recs, err := s.ds.Records(ctx)
	if err != nil {
		return models.MetadataView{}, err
	}

	var earliest, latest time.Time
	weekDates := make(map[string]struct{})
	for _, r := range recs {
		weekDates[r.WeekDate] = struct{}{}
		d, err := analytics.ParseWeekDate(r.WeekDate)
		if err != nil {
			continue
		}
		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
		if latest.IsZero() || d.After(latest) {
			latest = d
		}
	}

	view := models.MetadataView{
		Partners:  sortedDistinct(recs, models.DimPartner),
		Channels:  sortedDistinct(recs, models.DimChannel),
		Campaigns: sortedDistinct(recs, models.DimCampaign),
		Brands:    sortedDistinct(recs, models.DimBrand),
		Tactics:   sortedDistinct(recs, models.DimTactic),
		DateRange: models.MetaDateRange{TotalWeeks: len(weekDates)},
		PeriodOptions: []models.PeriodOption{
			{Value: 4, Label: "Last 4 weeks", Description: "Recent monthly performance"},
			{Value: 12, Label: "Last 12 weeks", Description: "Quarterly view"},
			{Value: 24, Label: "Last 24 weeks", Description: "Semi-annual analysis"},
			{Value: 36, Label: "Last 36 weeks", Description: "Full year perspective"},
		},
	}
	if !earliest.IsZero() {
		view.DateRange.Earliest = earliest.UTC().Format(time.RFC3339)
		view.DateRange.Latest = latest.UTC().Format(time.RFC3339)
	}
	return view, nil
}

func (s *Service) insights(current []models.Record, curSum models.AggRow) models.Insights {
	ins := models.Insights{
		ActivePartners:  len(distinctValues(current, models.DimPartner)),
		ActiveCampaigns: len(distinctValues(current, models.DimCampaign)),
		ActiveChannels:  len(distinctValues(current, models.DimChannel)),
		WeeksIncluded:   len(analytics.DistinctWeeks(current)),
	}

	var start, end time.Time
	for _, r := range current {
		d, err := analytics.ParseWeekDate(r.WeekDate)
		if err != nil {
			continue
		}
		if start.IsZero() || d.Before(start) {
			start = d
		}
		if end.IsZero() || d.After(end) {
			end = d
		}
	}
	if !start.IsZero() {
		s0 := start.UTC().Format(time.RFC3339)
		e0 := end.UTC().Format(time.RFC3339)
		ins.DateRange = models.DateRange{Start: &s0, End: &e0}
	}

	byPartner := analytics.Aggregate(current, []string{models.DimPartner})
	sort.Slice(byPartner, func(i, j int) bool { return byPartner[i].Spend > byPartner[j].Spend })
	if len(byPartner) > 0 {
		ins.TopPartner = &byPartner[0]
	}

	byCampaign := analytics.Aggregate(current, []string{models.DimCampaign})
	sort.Slice(byCampaign, func(i, j int) bool { return byCampaign[i].Spend > byCampaign[j].Spend })
	if len(byCampaign) > 0 {
		ins.TopCampaign = &byCampaign[0]
	}

	breakdown := []models.ChannelShare{}
	for _, ch := range analytics.Aggregate(current, []string{models.DimChannel}) {
		share := models.ChannelShare{Channel: ch.Channel}
		if curSum.Spend > 0 {
			share.SpendShare = ch.Spend / curSum.Spend * 100
		}
		if curSum.Sales > 0 {
			share.SalesShare = ch.Sales / curSum.Sales * 100
		}
		breakdown = append(breakdown, share)
	}
	ins.ChannelBreakdown = breakdown
	return ins
}

func periodLabel(n int) string { return fmt.Sprintf("Last %d weeks", n) }

func firstOrZero(rows []models.AggRow) models.AggRow {
	if len(rows) > 0 {
		return rows[0]
	}
	return models.AggRow{}
}

func snapshot(label string, weeks int, sum models.AggRow) models.PeriodSnapshot {
	return models.PeriodSnapshot{
		Period:      label,
		Weeks:       weeks,
		Spend:       sum.Spend,
		Sales:       sum.Sales,
		Impressions: sum.Impressions,
		Clicks:      sum.Clicks,
		ROAS:        sum.ROAS,
		CTR:         sum.CTR,
	}
}

func changeSet(cur, prev models.AggRow) models.ChangeSet {
	return models.ChangeSet{
		Spend:       analytics.Change(cur.Spend, prev.Spend),
		Sales:       analytics.Change(cur.Sales, prev.Sales),
		Impressions: analytics.Change(float64(cur.Impressions), float64(prev.Impressions)),
		Clicks:      analytics.Change(float64(cur.Clicks), float64(prev.Clicks)),
		ROAS:        analytics.Change(cur.ROAS, prev.ROAS),
		CTR:         analytics.Change(cur.CTR, prev.CTR),
		MediaContribution: models.Delta{
			Value:              analytics.PercentagePoints(contribution(cur), contribution(prev)),
			IsPercentagePoints: true,
		},
	}
}

// contribution is the media share of total sales, as a proportion.
func contribution(sum models.AggRow) float64 {
	if sum.TotalSalesPeriod == 0 {
		return 0
	}
	return sum.Sales / sum.TotalSalesPeriod
}

// trendChange is the week-over-week delta used on /trends: unlike the
// comparative analyzer it reports 0 (not +100) on a zero previous value.
func trendChange(current, previous float64) *float64 {
	var v float64
	if previous > 0 {
		v = (current - previous) / previous * 100
	}
	return &v
}

func distinctValues(records []models.Record, field string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := r.Dim(field)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sortedDistinct(records []models.Record, field string) []string {
	var out []string
	for _, v := range distinctValues(records, field) {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func weekRange(weeks []string) string {
	if len(weeks) == 0 {
		return "No data"
	}
	// weeks are most recent first
	return weeks[len(weeks)-1] + " to " + weeks[0]
}

func latestYear(currentWeeks []string) int {
	if len(currentWeeks) > 0 && len(currentWeeks[0]) >= 4 {
		if y, err := strconv.Atoi(currentWeeks[0][:4]); err == nil {
			return y
		}
	}
	return time.Now().Year()
}
