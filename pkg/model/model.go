package model

import "time"

// Service identifies one of the six home health service-offering flags.
type Service string

const (
	ServiceNursing         Service = "Nursing Care"
	ServicePhysicalTherapy Service = "Physical Therapy"
	ServiceOccupational    Service = "Occupational Therapy"
	ServiceSpeechPathology Service = "Speech Pathology"
	ServiceMedicalSocial   Service = "Medical Social"
	ServiceHomeHealthAide  Service = "Home Health Aide"
)

// Services lists the offering flags in dataset column order.
var Services = []Service{
	ServiceNursing,
	ServicePhysicalTherapy,
	ServiceOccupational,
	ServiceSpeechPathology,
	ServiceMedicalSocial,
	ServiceHomeHealthAide,
}

// HomeHealthProvider is one agency row of the home health compare file.
type HomeHealthProvider struct {
	CCN         string             `json:"ccn"`
	Name        string             `json:"name"`
	State       string             `json:"state"`
	City        string             `json:"city,omitempty"`
	Ownership   string             `json:"ownership,omitempty"`
	PPRCategory string             `json:"pprCategory,omitempty"`
	Offers      map[Service]bool   `json:"offers,omitempty"`
	Measures    map[string]float64 `json:"measures,omitempty"` // keyed by measure column name; absent when missing
}

// Measure returns the numeric value for a measure column, if reported.
func (p HomeHealthProvider) Measure(name string) (float64, bool) {
	v, ok := p.Measures[name]
	return v, ok
}

// Dimension returns the categorical value used by histogram comparisons.
func (p HomeHealthProvider) Dimension(name string) string {
	switch name {
	case DimensionState:
		return p.State
	case DimensionOwnership:
		return p.Ownership
	case DimensionPPR:
		return p.PPRCategory
	}
	return ""
}

// Compare dimensions offered by the home health histogram view.
const (
	DimensionState     = "State"
	DimensionOwnership = "Type of Ownership"
	DimensionPPR       = "PPR Performance Categorization"
)

// MeasurementPeriod is the collection window of a hospice measure. End is
// zero when the file leaves it blank or unparseable.
type MeasurementPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end,omitzero"`
}

// Score is a hospice measure score. Available is false for "Not Available" and
// any other non-numeric text.
type Score struct {
	Value     float64 `json:"value"`
	Available bool    `json:"available"`
	Raw       string  `json:"raw,omitempty"`
}

// HospiceRecord is one (facility, measure, period) row of the hospice file.
// CCN repeats across measurement periods.
type HospiceRecord struct {
	CCN          string             `json:"ccn"`
	FacilityName string             `json:"facilityName"`
	State        string             `json:"state"`
	County       string             `json:"county,omitempty"`
	City         string             `json:"city,omitempty"`
	MeasureCode  string             `json:"measureCode,omitempty"`
	MeasureName  string             `json:"measureName"`
	Score        Score              `json:"score"`
	Period       *MeasurementPeriod `json:"period,omitempty"`
}

// StartYear returns the measurement period start year, or 0 when unknown.
func (r HospiceRecord) StartYear() int {
	if r.Period == nil {
		return 0
	}
	return r.Period.Start.Year()
}

// HospitalRecord is one (facility, payment measure) row of the hospital
// payment and value of care file.
type HospitalRecord struct {
	FacilityID      string   `json:"facilityId"`
	FacilityName    string   `json:"facilityName"`
	State           string   `json:"state"`
	County          string   `json:"county,omitempty"`
	City            string   `json:"city,omitempty"`
	MeasureName     string   `json:"measureName"`
	PaymentCategory string   `json:"paymentCategory,omitempty"`
	ValueCategory   string   `json:"valueCategory,omitempty"`
	Payment         *float64 `json:"payment,omitempty"` // nil when not available or unparseable
	PaymentRaw      string   `json:"paymentRaw,omitempty"`
}

// Options holds the distinct values used to populate selection lists.
type Options struct {
	HomeHealthStates  []string `json:"homeHealthStates"`
	OwnershipTypes    []string `json:"ownershipTypes"`
	PPRCategories     []string `json:"pprCategories"`
	CompareDimensions []string `json:"compareDimensions"`
	HospiceStates     []string `json:"hospiceStates"`
	HospiceMeasures   []string `json:"hospiceMeasures"`
	HospiceStartYears []int    `json:"hospiceStartYears"`
	HospiceEndYears   []int    `json:"hospiceEndYears"`
	HospitalStates    []string `json:"hospitalStates"`
	HospitalMeasures  []string `json:"hospitalMeasures"`
	ValueCategories   []string `json:"valueCategories"`
	PaymentCategories []string `json:"paymentCategories"`
}

// LoadStats counts what the loader did to each dataset.
type LoadStats struct {
	Dataset        string `json:"dataset"`
	Source         string `json:"source"`
	Rows           int    `json:"rows"`
	MissingValues  int    `json:"missingValues"`  // cells left missing after coercion failed
	InvalidPeriods int    `json:"invalidPeriods"` // hospice periods dropped (end before start)
}

// SummaryRow is the per-state aggregate behind the home health map.
type SummaryRow struct {
	State              string              `json:"state" firestore:"state"`
	Providers          int                 `json:"providers" firestore:"providers"`
	QualityOfCare      *float64            `json:"qualityOfPatientCare" firestore:"qualityOfPatientCare"`
	SpendingPerEpisode *float64            `json:"medicareSpendingPerEpisode" firestore:"medicareSpendingPerEpisode"`
	OfferingPct        map[Service]float64 `json:"offeringPct" firestore:"offeringPct"`
	OfferingCount      map[Service]int     `json:"offeringCount" firestore:"offeringCount"`
}

// StateSummary is the full per-state table.
type StateSummary struct {
	Rows           []SummaryRow `json:"rows" firestore:"rows"`
	TotalProviders int          `json:"totalProviders" firestore:"totalProviders"`
}

// PublishedSummary is the singleton Firestore document holding the last
// published state summary.
type PublishedSummary struct {
	LastUpdated time.Time    `json:"lastUpdated,omitempty" firestore:"lastUpdated,omitempty"`
	Fingerprint string       `json:"fingerprint,omitempty" firestore:"fingerprint,omitempty"`
	Summary     StateSummary `json:"summary" firestore:"summary"`
}

// MapMetric describes one metric selectable on the home health map.
type MapMetric struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Percent     bool   `json:"percent"`
}

// MapPoint is one state's value for the selected map metric.
type MapPoint struct {
	State string   `json:"state"`
	Value *float64 `json:"value"`
}

// MapView is the choropleth payload.
type MapView struct {
	Metric MapMetric  `json:"metric"`
	Points []MapPoint `json:"points"`
}

// LabelCount is a label with a count, used for tables and pie slices.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Extreme names the holder of a maximum or minimum value.
type Extreme struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Highlights is the summary-box payload next to the map.
type Highlights struct {
	Metric    MapMetric    `json:"metric"`
	State     string       `json:"state"`
	Highest   *Extreme     `json:"highest,omitempty"`
	Lowest    *Extreme     `json:"lowest,omitempty"`
	Ownership []LabelCount `json:"ownership,omitempty"`
	Offering  []LabelCount `json:"offering,omitempty"`
}

// Quantiles are the MIN/25th/50th/75th/MAX of a sample.
type Quantiles struct {
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// CompareGroup is one side of a histogram comparison.
type CompareGroup struct {
	Label     string     `json:"label"`
	Values    []float64  `json:"values"`
	Quantiles *Quantiles `json:"quantiles,omitempty"`
}

// Comparison is the histogram payload.
type Comparison struct {
	Metric    string         `json:"metric"`
	Dimension string         `json:"dimension"`
	Groups    []CompareGroup `json:"groups"`
}

// RankedEntry is one row of a ranking table.
type RankedEntry struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// YearPoint is one bar of the hospice trend chart.
type YearPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// RegionScore is one row of a regional breakdown.
type RegionScore struct {
	Region    string  `json:"region"`
	Score     float64 `json:"score"`
	Providers int     `json:"providers"`
}

// HospiceRanking is the hospice section payload.
type HospiceRanking struct {
	State     string        `json:"state"`
	Measure   string        `json:"measure"`
	Statistic string        `json:"statistic"`
	Selected  []YearPoint   `json:"selected"`
	National  []YearPoint   `json:"national"`
	Top       []RankedEntry `json:"top"`
	Bottom    []RankedEntry `json:"bottom"`
	Counties  []RegionScore `json:"counties"`
	Rows      int           `json:"rows"`
}

// RegionAmount is one row of the hospital payment leaderboard.
type RegionAmount struct {
	Region  string  `json:"region"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// HospitalBreakdown is the hospital section payload.
type HospitalBreakdown struct {
	State        string         `json:"state"`
	Measure      string         `json:"measure"`
	RegionAxis   string         `json:"regionAxis"`
	Rows         int            `json:"rows"`
	ByValue      []LabelCount   `json:"byValueCategory"`
	ByPayment    []LabelCount   `json:"byPaymentCategory"`
	TopByValue   []LabelCount   `json:"topRegionsByValueCategory"`
	TopByPayment []RegionAmount `json:"topRegionsByPayment"`
}

// Article is a news article as shown in the news tables.
type Article struct {
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	SourceID    string    `json:"sourceId,omitempty"`
	SourceName  string    `json:"sourceName,omitempty"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Outlet is a news source selectable in the headlines view.
type Outlet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
