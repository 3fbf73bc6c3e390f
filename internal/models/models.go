package models

// Record is one normalized row of the media contribution table. Year, Week
// and YearWeek are derived from WeekDate at load time; everything else comes
// straight from the source columns.
type Record struct {
	Partner    string `json:"partner"`
	Channel    string `json:"channel"`
	Subchannel string `json:"subchannel"`
	Campaign   string `json:"campaign"`
	Tactic     string `json:"tactic"`
	Brand      string `json:"brand"`
	WeekDate   string `json:"week-date" validate:"required"`

	Spend       float64 `json:"spend" validate:"gte=0"`
	Impressions int64   `json:"impressions" validate:"gte=0"`
	Clicks      int64   `json:"clicks" validate:"gte=0"`
	Sales       float64 `json:"sales" validate:"gte=0"`
	// TotalSalesWeek is the partner's total sales for the calendar week and
	// repeats on every row of that partner+week; it must never be summed
	// across rows of the same week.
	TotalSalesWeek float64 `json:"total-sales-week" validate:"gte=0"`

	Year     int    `json:"year"`
	Week     int    `json:"week"`
	YearWeek string `json:"yearWeek"`
}

// Dimension field names accepted by the aggregator.
const (
	DimPartner    = "partner"
	DimChannel    = "channel"
	DimSubchannel = "subchannel"
	DimCampaign   = "campaign"
	DimTactic     = "tactic"
	DimBrand      = "brand"
	DimYearWeek   = "yearWeek"
	DimWeekDate   = "week-date"
)

// Dim returns the value of the named dimension field. Unknown names return "".
func (r Record) Dim(field string) string {
	switch field {
	case DimPartner:
		return r.Partner
	case DimChannel:
		return r.Channel
	case DimSubchannel:
		return r.Subchannel
	case DimCampaign:
		return r.Campaign
	case DimTactic:
		return r.Tactic
	case DimBrand:
		return r.Brand
	case DimYearWeek:
		return r.YearWeek
	case DimWeekDate:
		return r.WeekDate
	}
	return ""
}

// AggRow is one grouped summary. Only the dimensions that were grouped on
// are populated; the rest are omitted from JSON.
type AggRow struct {
	Partner    string `json:"partner,omitempty"`
	Channel    string `json:"channel,omitempty"`
	Subchannel string `json:"subchannel,omitempty"`
	Campaign   string `json:"campaign,omitempty"`
	Tactic     string `json:"tactic,omitempty"`
	Brand      string `json:"brand,omitempty"`
	YearWeek   string `json:"yearWeek,omitempty"`
	WeekDate   string `json:"week-date,omitempty"`

	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Sales       float64 `json:"sales"`
	// TotalSalesPeriod sums TotalSalesWeek once per distinct week in the group.
	TotalSalesPeriod float64 `json:"total-sales-period"`

	ROAS          float64 `json:"roas"`
	CTR           float64 `json:"ctr"`
	CPC           float64 `json:"cpc"`
	CPM           float64 `json:"cpm"`
	Effectiveness float64 `json:"effectiveness"`

	UniqueCampaigns int `json:"uniqueCampaigns"`
	UniquePartners  int `json:"uniquePartners"`
	UniqueChannels  int `json:"uniqueChannels"`
	UniqueTactics   int `json:"uniqueTactics"`
	RecordCount     int `json:"recordCount"`
	WeekCount       int `json:"weekCount"`
}

// SetDim assigns the named dimension on the row. Unknown names are ignored.
func (a *AggRow) SetDim(field, value string) {
	switch field {
	case DimPartner:
		a.Partner = value
	case DimChannel:
		a.Channel = value
	case DimSubchannel:
		a.Subchannel = value
	case DimCampaign:
		a.Campaign = value
	case DimTactic:
		a.Tactic = value
	case DimBrand:
		a.Brand = value
	case DimYearWeek:
		a.YearWeek = value
	case DimWeekDate:
		a.WeekDate = value
	}
}
