package report

import (
	"sort"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// Ranking statistics and county orders.
const (
	StatisticMean   = "mean"
	StatisticMedian = "median"

	OrderTop    = "top"
	OrderBottom = "bottom"
)

const (
	rankSize   = 10
	countySize = 5
)

// RankingParams selects the hospice rows to rank. Years are compared against
// the measurement period start year, inclusive on both ends.
type RankingParams struct {
	State     string
	Measure   string
	StartYear int
	EndYear   int
	Statistic string
	Order     string
}

func (p RankingParams) withDefaults() RankingParams {
	if p.State == "" {
		p.State = AllStates
	}
	if p.Statistic != StatisticMean {
		p.Statistic = StatisticMedian
	}
	if p.Order != OrderBottom {
		p.Order = OrderTop
	}
	return p
}

// RankHospice ranks hospice facilities on one measure. Rows with no usable
// score or period start are excluded; a missing period end does not matter.
// An empty selection yields empty lists rather than an error.
func RankHospice(records []model.HospiceRecord, params RankingParams) model.HospiceRanking {
	params = params.withDefaults()
	out := model.HospiceRanking{
		State:     params.State,
		Measure:   params.Measure,
		Statistic: params.Statistic,
		Selected:  []model.YearPoint{},
		National:  []model.YearPoint{},
		Top:       []model.RankedEntry{},
		Bottom:    []model.RankedEntry{},
		Counties:  []model.RegionScore{},
	}
	if params.StartYear > params.EndYear {
		return out
	}

	var national, filtered []model.HospiceRecord
	for _, r := range records {
		if r.MeasureName != params.Measure || !r.Score.Available || r.Period == nil {
			continue
		}
		year := r.StartYear()
		if year < params.StartYear || year > params.EndYear {
			continue
		}
		national = append(national, r)
		if params.State == AllStates || r.State == params.State {
			filtered = append(filtered, r)
		}
	}

	out.Rows = len(filtered)
	out.Selected = yearlyStatistic(filtered, params.Statistic)
	out.National = yearlyStatistic(national, params.Statistic)
	if len(filtered) == 0 {
		return out
	}

	ranked := make([]model.HospiceRecord, len(filtered))
	copy(ranked, filtered)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Value > ranked[j].Score.Value
	})
	out.Top = rankedEntries(ranked[:min(rankSize, len(ranked))])
	out.Bottom = rankedEntries(ranked[max(0, len(ranked)-rankSize):])
	out.Counties = countyScores(filtered, params.Order)
	return out
}

func yearlyStatistic(records []model.HospiceRecord, statistic string) []model.YearPoint {
	byYear := make(map[int][]float64)
	for _, r := range records {
		y := r.StartYear()
		byYear[y] = append(byYear[y], r.Score.Value)
	}

	points := make([]model.YearPoint, 0, len(byYear))
	for year, scores := range byYear {
		var v float64
		if statistic == StatisticMean {
			v, _ = mean(scores)
		} else {
			v, _ = median(scores)
		}
		points = append(points, model.YearPoint{Year: year, Value: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

func rankedEntries(records []model.HospiceRecord) []model.RankedEntry {
	out := make([]model.RankedEntry, len(records))
	for i, r := range records {
		out[i] = model.RankedEntry{ID: r.CCN, Name: r.FacilityName, Score: r.Score.Value}
	}
	return out
}

func countyScores(records []model.HospiceRecord, order string) []model.RegionScore {
	type county struct {
		scores []float64
		ccns   map[string]struct{}
	}
	byCounty := make(map[string]*county)
	for _, r := range records {
		if r.County == "" {
			continue
		}
		c, ok := byCounty[r.County]
		if !ok {
			c = &county{ccns: make(map[string]struct{})}
			byCounty[r.County] = c
		}
		c.scores = append(c.scores, r.Score.Value)
		c.ccns[r.CCN] = struct{}{}
	}

	out := make([]model.RegionScore, 0, len(byCounty))
	for name, c := range byCounty {
		med, _ := median(c.scores)
		out = append(out, model.RegionScore{Region: name, Score: med, Providers: len(c.ccns)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			if order == OrderBottom {
				return out[i].Score < out[j].Score
			}
			return out[i].Score > out[j].Score
		}
		return out[i].Region < out[j].Region
	})
	if len(out) > countySize {
		out = out[:countySize]
	}
	return out
}
