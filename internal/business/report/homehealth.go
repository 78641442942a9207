package report

import (
	"errors"
	"sort"
	"strings"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/dataset"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// AllStates selects every state in the map, ranking and breakdown views.
const AllStates = "All"

// Map metric names.
const (
	MetricTotalProviders = "Total Number of Providers"
	MetricQualityOfCare  = "Quality of Patient Care"
	MetricSpending       = "Medicare Spending per Episode per Provider"
	offeringPrefix       = "% of Providers Offering "
)

var (
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrUnknownMeasure   = errors.New("unknown measure")
	ErrUnknownDimension = errors.New("unknown compare dimension")
)

var metricCatalogue = buildMetricCatalogue()

func buildMetricCatalogue() []model.MapMetric {
	metrics := []model.MapMetric{{
		Name:        MetricTotalProviders,
		Description: "The total number of Home Health Agencies for each U.S state.",
	}}
	for _, svc := range model.Services {
		metrics = append(metrics, model.MapMetric{
			Name:        OfferingMetric(svc),
			Description: "The percent of Home Health Agencies offering " + strings.ToLower(string(svc)) + " services in each U.S state.",
			Percent:     true,
		})
	}
	return append(metrics,
		model.MapMetric{
			Name:        MetricQualityOfCare,
			Description: "The average (mean) quality of patient care star rating.",
		},
		model.MapMetric{
			Name:        MetricSpending,
			Description: "The average (mean) amount Medicare spends on an episode of care per home health agencies, compared to the Medicare spending across all agencies nationally",
		},
	)
}

// OfferingMetric returns the map metric name for a service flag.
func OfferingMetric(svc model.Service) string {
	return offeringPrefix + string(svc) + " Services"
}

// MapMetrics lists the metrics selectable on the home health map.
func MapMetrics() []model.MapMetric {
	out := make([]model.MapMetric, len(metricCatalogue))
	copy(out, metricCatalogue)
	return out
}

// LookupMetric finds a map metric by name.
func LookupMetric(name string) (model.MapMetric, bool) {
	for _, m := range metricCatalogue {
		if m.Name == name {
			return m, true
		}
	}
	return model.MapMetric{}, false
}

func offeringService(metric string) (model.Service, bool) {
	for _, svc := range model.Services {
		if OfferingMetric(svc) == metric {
			return svc, true
		}
	}
	return "", false
}

type stateAccumulator struct {
	ccns     map[string]struct{}
	offering map[model.Service]map[string]struct{}
	quality  []float64
	spending []float64
}

// AggregateStateSummary reduces the home health table into one row per state.
// Providers are counted by distinct CCN, so a provider listed twice is counted
// once both in the total and in each offering percentage.
func AggregateStateSummary(providers []model.HomeHealthProvider) model.StateSummary {
	byState := make(map[string]*stateAccumulator)

	for _, p := range providers {
		if p.State == "" {
			continue
		}
		acc, ok := byState[p.State]
		if !ok {
			acc = &stateAccumulator{
				ccns:     make(map[string]struct{}),
				offering: make(map[model.Service]map[string]struct{}, len(model.Services)),
			}
			for _, svc := range model.Services {
				acc.offering[svc] = make(map[string]struct{})
			}
			byState[p.State] = acc
		}
		acc.ccns[p.CCN] = struct{}{}
		for _, svc := range model.Services {
			if p.Offers[svc] {
				acc.offering[svc][p.CCN] = struct{}{}
			}
		}
		if v, ok := p.Measure(dataset.MeasureQualityStar); ok {
			acc.quality = append(acc.quality, v)
		}
		if v, ok := p.Measure(dataset.MeasureSpending); ok {
			acc.spending = append(acc.spending, v)
		}
	}

	states := make([]string, 0, len(byState))
	for st := range byState {
		states = append(states, st)
	}
	sort.Strings(states)

	summary := model.StateSummary{Rows: make([]model.SummaryRow, 0, len(states))}
	for _, st := range states {
		acc := byState[st]
		n := len(acc.ccns)
		row := model.SummaryRow{
			State:         st,
			Providers:     n,
			OfferingPct:   make(map[model.Service]float64, len(model.Services)),
			OfferingCount: make(map[model.Service]int, len(model.Services)),
		}
		if m, ok := mean(acc.quality); ok {
			row.QualityOfCare = ptr(round(m, 2))
		}
		if m, ok := mean(acc.spending); ok {
			row.SpendingPerEpisode = ptr(round(m, 2))
		}
		for _, svc := range model.Services {
			count := len(acc.offering[svc])
			row.OfferingCount[svc] = count
			row.OfferingPct[svc] = round(100*float64(count)/float64(n), 1)
		}
		summary.Rows = append(summary.Rows, row)
		summary.TotalProviders += n
	}
	return summary
}

// metricValue returns a summary row's value for a map metric.
func metricValue(row model.SummaryRow, metric string) *float64 {
	switch metric {
	case MetricTotalProviders:
		return ptr(float64(row.Providers))
	case MetricQualityOfCare:
		return copyFloat(row.QualityOfCare)
	case MetricSpending:
		return copyFloat(row.SpendingPerEpisode)
	}
	if svc, ok := offeringService(metric); ok {
		pct, ok := row.OfferingPct[svc]
		if !ok {
			return nil
		}
		return ptr(pct)
	}
	return nil
}

// BuildMapView returns the per-state values of one metric, for every state or
// only the selected one.
func BuildMapView(summary model.StateSummary, metric, state string) (model.MapView, error) {
	m, ok := LookupMetric(metric)
	if !ok {
		return model.MapView{}, ErrUnknownMetric
	}
	view := model.MapView{Metric: m, Points: make([]model.MapPoint, 0, len(summary.Rows))}
	for _, row := range summary.Rows {
		if state != AllStates && row.State != state {
			continue
		}
		view.Points = append(view.Points, model.MapPoint{State: row.State, Value: metricValue(row, metric)})
	}
	return view, nil
}

// BuildHighlights fills the summary boxes next to the map. For all states it
// names the states holding the highest and lowest value; for a single state
// the content depends on the metric. Unknown metrics and states yield empty
// highlights.
func BuildHighlights(summary model.StateSummary, providers []model.HomeHealthProvider, metric, state string) model.Highlights {
	m, ok := LookupMetric(metric)
	if !ok {
		return model.Highlights{Metric: model.MapMetric{Name: metric}, State: state}
	}
	h := model.Highlights{Metric: m, State: state}

	if state == AllStates {
		for _, row := range summary.Rows {
			v := metricValue(row, metric)
			if v == nil {
				continue
			}
			// strict comparisons keep the first state in alphabetical order on ties
			if h.Highest == nil || *v > h.Highest.Value {
				h.Highest = &model.Extreme{Name: row.State, Value: *v}
			}
			if h.Lowest == nil || *v < h.Lowest.Value {
				h.Lowest = &model.Extreme{Name: row.State, Value: *v}
			}
		}
		return h
	}

	var inState []model.HomeHealthProvider
	for _, p := range providers {
		if p.State == state {
			inState = append(inState, p)
		}
	}
	if len(inState) == 0 {
		return h
	}

	switch metric {
	case MetricTotalProviders:
		counts := make(map[string]int)
		for _, p := range inState {
			if p.Ownership != "" {
				counts[p.Ownership]++
			}
		}
		h.Ownership = sortedCounts(counts)
	case MetricQualityOfCare, MetricSpending:
		column := dataset.MeasureQualityStar
		if metric == MetricSpending {
			column = dataset.MeasureSpending
		}
		for _, p := range inState {
			v, ok := p.Measure(column)
			if !ok {
				continue
			}
			if h.Highest == nil || v > h.Highest.Value {
				h.Highest = &model.Extreme{ID: p.CCN, Name: p.Name, Value: v}
			}
			if h.Lowest == nil || v < h.Lowest.Value {
				h.Lowest = &model.Extreme{ID: p.CCN, Name: p.Name, Value: v}
			}
		}
	default:
		svc, _ := offeringService(metric)
		counts := make(map[string]int)
		for _, p := range inState {
			if p.Offers[svc] {
				counts["Yes"]++
			} else {
				counts["No"]++
			}
		}
		h.Offering = sortedCounts(counts)
	}
	return h
}

// sortedCounts orders labels by count descending, then label ascending.
func sortedCounts(counts map[string]int) []model.LabelCount {
	out := make([]model.LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, model.LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func isMeasure(name string) bool {
	for _, m := range dataset.HomeHealthMeasures {
		if m == name {
			return true
		}
	}
	return false
}

func isDimension(name string) bool {
	switch name {
	case model.DimensionState, model.DimensionOwnership, model.DimensionPPR:
		return true
	}
	return false
}

// Compare collects one measure for two groups of a compare dimension, with
// the MIN/25th/50th/75th/MAX table of each. A blank group label matches no
// provider.
func Compare(providers []model.HomeHealthProvider, measure, dimension string, groups ...string) (model.Comparison, error) {
	if !isMeasure(measure) {
		return model.Comparison{}, ErrUnknownMeasure
	}
	if !isDimension(dimension) {
		return model.Comparison{}, ErrUnknownDimension
	}

	cmp := model.Comparison{Metric: measure, Dimension: dimension, Groups: make([]model.CompareGroup, 0, len(groups))}
	for _, label := range groups {
		g := model.CompareGroup{Label: label, Values: []float64{}}
		if strings.TrimSpace(label) == "" {
			cmp.Groups = append(cmp.Groups, g)
			continue
		}
		for _, p := range providers {
			if p.Dimension(dimension) != label {
				continue
			}
			if v, ok := p.Measure(measure); ok {
				g.Values = append(g.Values, v)
			}
		}
		if len(g.Values) > 0 {
			asc := sorted(g.Values)
			q := model.Quantiles{}
			q.Min, _ = quantile(asc, 0)
			q.P25, _ = quantile(asc, 0.25)
			q.Median, _ = quantile(asc, 0.5)
			q.P75, _ = quantile(asc, 0.75)
			q.Max, _ = quantile(asc, 1)
			g.Quantiles = &q
		}
		cmp.Groups = append(cmp.Groups, g)
	}
	return cmp, nil
}

// CompareGroups lists the distinct values of a compare dimension.
func CompareGroups(providers []model.HomeHealthProvider, dimension string) ([]string, error) {
	if !isDimension(dimension) {
		return nil, ErrUnknownDimension
	}
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range providers {
		v := p.Dimension(dimension)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}
