package report

import (
	"maps"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/dataset"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// Dashboard serves every report over one loaded snapshot. It is safe for
// concurrent use because neither the snapshot nor the precomputed state
// summary is modified after NewDashboard returns.
type Dashboard struct {
	snap    *dataset.Snapshot
	summary model.StateSummary
}

// NewDashboard precomputes the state summary for a snapshot.
func NewDashboard(snap *dataset.Snapshot) *Dashboard {
	return &Dashboard{
		snap:    snap,
		summary: AggregateStateSummary(snap.HomeHealth),
	}
}

func (d *Dashboard) Snapshot() *dataset.Snapshot { return d.snap }

func (d *Dashboard) Options() model.Options { return d.snap.Options }

// Summary returns a copy of the per-state home health table; callers may
// modify it freely.
func (d *Dashboard) Summary() model.StateSummary {
	out := model.StateSummary{
		TotalProviders: d.summary.TotalProviders,
		Rows:           make([]model.SummaryRow, len(d.summary.Rows)),
	}
	for i, row := range d.summary.Rows {
		row.QualityOfCare = copyFloat(row.QualityOfCare)
		row.SpendingPerEpisode = copyFloat(row.SpendingPerEpisode)
		row.OfferingPct = maps.Clone(row.OfferingPct)
		row.OfferingCount = maps.Clone(row.OfferingCount)
		out.Rows[i] = row
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(*v)
}

func (d *Dashboard) MapView(metric, state string) (model.MapView, error) {
	return BuildMapView(d.summary, metric, state)
}

func (d *Dashboard) Highlights(metric, state string) model.Highlights {
	return BuildHighlights(d.summary, d.snap.HomeHealth, metric, state)
}

func (d *Dashboard) Compare(measure, dimension, group1, group2 string) (model.Comparison, error) {
	return Compare(d.snap.HomeHealth, measure, dimension, group1, group2)
}

func (d *Dashboard) CompareGroups(dimension string) ([]string, error) {
	return CompareGroups(d.snap.HomeHealth, dimension)
}

func (d *Dashboard) HospiceRanking(params RankingParams) model.HospiceRanking {
	return RankHospice(d.snap.Hospice, params)
}

func (d *Dashboard) HospitalBreakdown(params BreakdownParams) model.HospitalBreakdown {
	return BreakdownHospital(d.snap.Hospital, params)
}
