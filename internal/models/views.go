package models

// Response shapes for the read endpoints.

type PartnerSummary struct {
	AggRow
	Ticker string `json:"ticker"`
	// Contribution is the media share of the partner's total sales, in percent.
	Contribution float64 `json:"contribution"`
}

type PartnersView struct {
	Period        string           `json:"period"`
	TotalPartners int              `json:"totalPartners"`
	Data          []PartnerSummary `json:"data"`
}

type PartnerTacticsView struct {
	Period  string   `json:"period"`
	Partner string   `json:"partner"`
	Data    []AggRow `json:"data"`
}

// TrendRow carries week-over-week change percentages relative to the
// previous row of the same result set. The first row has none.
type TrendRow struct {
	AggRow
	SpendChange       *float64 `json:"spend_change,omitempty"`
	ImpressionsChange *float64 `json:"impressions_change,omitempty"`
	ClicksChange      *float64 `json:"clicks_change,omitempty"`
	SalesChange       *float64 `json:"sales_change,omitempty"`
	ROASChange        *float64 `json:"roas_change,omitempty"`
}

type TrendsView struct {
	Period  string     `json:"period"`
	GroupBy string     `json:"groupBy"`
	Data    []TrendRow `json:"data"`
}

type ChannelGroup struct {
	AggRow
	Subchannels  []AggRow `json:"subchannels"`
	TopCampaigns []AggRow `json:"topCampaigns"`
}

type ChannelsView struct {
	Period string                  `json:"period"`
	Data   map[string]ChannelGroup `json:"data"`
}

// PeriodSnapshot is one side of a PoP or YoY comparison.
type PeriodSnapshot struct {
	Period      string  `json:"period"`
	Weeks       int     `json:"weeks"`
	Spend       float64 `json:"spend"`
	Sales       float64 `json:"sales"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	ROAS        float64 `json:"roas"`
	CTR         float64 `json:"ctr"`
}

// Delta distinguishes percentage-point movements of proportion metrics from
// plain percentage changes; consumers format the two differently.
type Delta struct {
	Value              float64 `json:"value"`
	IsPercentagePoints bool    `json:"isPercentagePoints"`
}

type ChangeSet struct {
	Spend             float64 `json:"spend"`
	Sales             float64 `json:"sales"`
	Impressions       float64 `json:"impressions"`
	Clicks            float64 `json:"clicks"`
	ROAS              float64 `json:"roas"`
	CTR               float64 `json:"ctr"`
	MediaContribution Delta   `json:"mediaContribution"`
}

type PeriodComparison struct {
	Current  PeriodSnapshot `json:"current"`
	Previous PeriodSnapshot `json:"previous"`
	Changes  ChangeSet      `json:"changes"`
}

type ChannelShare struct {
	Channel    string  `json:"channel"`
	SpendShare float64 `json:"spendShare"`
	SalesShare float64 `json:"salesShare"`
}

type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type Insights struct {
	ActivePartners   int            `json:"activePartners"`
	ActiveCampaigns  int            `json:"activeCampaigns"`
	ActiveChannels   int            `json:"activeChannels"`
	WeeksIncluded    int            `json:"weeksIncluded"`
	DateRange        DateRange      `json:"dateRange"`
	TopPartner       *AggRow        `json:"topPartner,omitempty"`
	TopCampaign      *AggRow        `json:"topCampaign,omitempty"`
	ChannelBreakdown []ChannelShare `json:"channelBreakdown"`
}

type GlobalMetricsView struct {
	Period           string           `json:"period"`
	Summary          AggRow           `json:"summary"`
	Insights         Insights         `json:"insights"`
	PeriodOverPeriod PeriodComparison `json:"periodOverPeriod"`
	YearOverYear     PeriodComparison `json:"yearOverYear"`
}

type PeriodDetail struct {
	Weeks       []string `json:"weeks"`
	WeekRange   string   `json:"weekRange"`
	RecordCount int      `json:"recordCount"`
	Summary     AggRow   `json:"summary"`
}

type YoYDetail struct {
	TargetWeeks []string `json:"targetWeeks"`
	FoundWeeks  []string `json:"foundWeeks"`
	RecordCount int      `json:"recordCount"`
	Summary     AggRow   `json:"summary"`
}

type ComparisonsView struct {
	PeriodWeeks      int          `json:"periodWeeks"`
	Current          PeriodDetail `json:"current"`
	PeriodOverPeriod PeriodDetail `json:"periodOverPeriod"`
	YearOverYear     YoYDetail    `json:"yearOverYear"`
}

type TickerEntry struct {
	Partner string `json:"partner"`
	Ticker  string `json:"ticker"`
}

type TickersView struct {
	Tickers []TickerEntry `json:"tickers"`
}

type PeriodOption struct {
	Value       int    `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type MetaDateRange struct {
	Earliest   string `json:"earliest"`
	Latest     string `json:"latest"`
	TotalWeeks int    `json:"totalWeeks"`
}

type MetadataView struct {
	Partners      []string       `json:"partners"`
	Channels      []string       `json:"channels"`
	Campaigns     []string       `json:"campaigns"`
	Brands        []string       `json:"brands"`
	Tactics       []string       `json:"tactics"`
	DateRange     MetaDateRange  `json:"dateRange"`
	PeriodOptions []PeriodOption `json:"periodOptions"`
}
