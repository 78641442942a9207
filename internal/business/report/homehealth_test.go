package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/dataset"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

func provider(ccn, state string, nursing bool, measures map[string]float64) model.HomeHealthProvider {
	return model.HomeHealthProvider{
		CCN:      ccn,
		Name:     "Agency " + ccn,
		State:    state,
		Offers:   map[model.Service]bool{model.ServiceNursing: nursing},
		Measures: measures,
	}
}

func TestAggregateStateSummaryTwoStates(t *testing.T) {
	providers := []model.HomeHealthProvider{
		provider("A1", "A", true, nil),
		provider("A2", "A", true, nil),
		provider("A3", "A", false, nil),
		provider("B1", "B", true, nil),
	}

	summary := AggregateStateSummary(providers)
	require.Len(t, summary.Rows, 2)
	assert.Equal(t, 4, summary.TotalProviders)

	a, b := summary.Rows[0], summary.Rows[1]
	assert.Equal(t, "A", a.State)
	assert.Equal(t, 3, a.Providers)
	assert.Equal(t, 66.7, a.OfferingPct[model.ServiceNursing])
	assert.Equal(t, 2, a.OfferingCount[model.ServiceNursing])
	assert.Equal(t, "B", b.State)
	assert.Equal(t, 100.0, b.OfferingPct[model.ServiceNursing])
}

func TestAggregateStateSummaryMeansAndDuplicates(t *testing.T) {
	providers := []model.HomeHealthProvider{
		provider("X1", "TX", true, map[string]float64{dataset.MeasureQualityStar: 3.5, dataset.MeasureSpending: 0.97}),
		provider("X2", "TX", false, map[string]float64{dataset.MeasureQualityStar: 4.0}),
		provider("X2", "TX", true, map[string]float64{dataset.MeasureQualityStar: 4.0}),
		provider("Z1", "", true, nil),
		provider("N1", "NM", false, nil),
	}

	summary := AggregateStateSummary(providers)
	require.Len(t, summary.Rows, 2, "blank state is ignored")
	assert.Equal(t, 3, summary.TotalProviders)

	nm, tx := summary.Rows[0], summary.Rows[1]
	assert.Nil(t, nm.QualityOfCare, "no reported values gives a null mean")

	assert.Equal(t, 2, tx.Providers, "providers are counted by distinct CCN")
	require.NotNil(t, tx.QualityOfCare)
	assert.Equal(t, 3.83, *tx.QualityOfCare)
	require.NotNil(t, tx.SpendingPerEpisode)
	assert.Equal(t, 0.97, *tx.SpendingPerEpisode)
	assert.Equal(t, 100.0, tx.OfferingPct[model.ServiceNursing])

	for _, row := range summary.Rows {
		for _, svc := range model.Services {
			assert.GreaterOrEqual(t, row.OfferingPct[svc], 0.0)
			assert.LessOrEqual(t, row.OfferingPct[svc], 100.0)
			assert.LessOrEqual(t, row.OfferingCount[svc], row.Providers)
		}
	}
}

func TestMetricCatalogue(t *testing.T) {
	metrics := MapMetrics()
	require.Len(t, metrics, 9)
	assert.Equal(t, MetricTotalProviders, metrics[0].Name)
	assert.Equal(t, "% of Providers Offering Nursing Care Services", metrics[1].Name)
	assert.True(t, metrics[1].Percent)
	assert.Equal(t, MetricSpending, metrics[8].Name)

	m, ok := LookupMetric("% of Providers Offering Home Health Aide Services")
	require.True(t, ok)
	assert.Contains(t, m.Description, "home health aide services")
}

func TestBuildMapView(t *testing.T) {
	summary := AggregateStateSummary([]model.HomeHealthProvider{
		provider("A1", "AL", true, nil),
		provider("K1", "AK", false, nil),
	})

	view, err := BuildMapView(summary, OfferingMetric(model.ServiceNursing), AllStates)
	require.NoError(t, err)
	require.Len(t, view.Points, 2)
	assert.Equal(t, "AK", view.Points[0].State)
	assert.Equal(t, 0.0, *view.Points[0].Value)
	assert.Equal(t, 100.0, *view.Points[1].Value)

	view, err = BuildMapView(summary, MetricTotalProviders, "AL")
	require.NoError(t, err)
	require.Len(t, view.Points, 1)
	assert.Equal(t, 1.0, *view.Points[0].Value)

	view, err = BuildMapView(summary, MetricQualityOfCare, AllStates)
	require.NoError(t, err)
	assert.Nil(t, view.Points[0].Value)

	_, err = BuildMapView(summary, "Bogus", AllStates)
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestBuildHighlightsAllStates(t *testing.T) {
	providers := []model.HomeHealthProvider{
		provider("A1", "AL", true, nil),
		provider("A2", "AL", true, nil),
		provider("K1", "AK", true, nil),
		provider("Z1", "AZ", true, nil),
		provider("Z2", "AZ", true, nil),
	}
	h := BuildHighlights(AggregateStateSummary(providers), providers, MetricTotalProviders, AllStates)

	require.NotNil(t, h.Highest)
	require.NotNil(t, h.Lowest)
	assert.Equal(t, "AL", h.Highest.Name, "ties go to the first state alphabetically")
	assert.Equal(t, 2.0, h.Highest.Value)
	assert.Equal(t, "AK", h.Lowest.Name)
}

func TestBuildHighlightsSingleState(t *testing.T) {
	providers := []model.HomeHealthProvider{
		{CCN: "1", Name: "First", State: "AL", Ownership: "PROPRIETARY", Offers: map[model.Service]bool{model.ServiceNursing: true},
			Measures: map[string]float64{dataset.MeasureQualityStar: 4.5}},
		{CCN: "2", Name: "Second", State: "AL", Ownership: "GOVERNMENT", Measures: map[string]float64{dataset.MeasureQualityStar: 2.0}},
		{CCN: "3", Name: "Third", State: "AL", Ownership: "PROPRIETARY", Offers: map[model.Service]bool{model.ServiceNursing: true},
			Measures: map[string]float64{dataset.MeasureQualityStar: 4.5}},
		{CCN: "4", Name: "Elsewhere", State: "GA", Ownership: "GOVERNMENT"},
	}
	summary := AggregateStateSummary(providers)

	h := BuildHighlights(summary, providers, MetricTotalProviders, "AL")
	want := []model.LabelCount{{Label: "PROPRIETARY", Count: 2}, {Label: "GOVERNMENT", Count: 1}}
	if diff := cmp.Diff(want, h.Ownership); diff != "" {
		t.Errorf("ownership mismatch (-want +got):\n%s", diff)
	}

	h = BuildHighlights(summary, providers, MetricQualityOfCare, "AL")
	require.NotNil(t, h.Highest)
	assert.Equal(t, "1", h.Highest.ID, "first provider in row order wins ties")
	assert.Equal(t, 4.5, h.Highest.Value)
	assert.Equal(t, "Second", h.Lowest.Name)

	h = BuildHighlights(summary, providers, OfferingMetric(model.ServiceNursing), "AL")
	want = []model.LabelCount{{Label: "Yes", Count: 2}, {Label: "No", Count: 1}}
	if diff := cmp.Diff(want, h.Offering); diff != "" {
		t.Errorf("offering mismatch (-want +got):\n%s", diff)
	}

	empty := BuildHighlights(summary, providers, MetricTotalProviders, "ZZ")
	assert.Nil(t, empty.Ownership)
	assert.Nil(t, empty.Highest)

	empty = BuildHighlights(summary, providers, "Bogus", AllStates)
	assert.Nil(t, empty.Highest)
}

func TestCompare(t *testing.T) {
	m := dataset.MeasureQualityStar
	providers := []model.HomeHealthProvider{
		{CCN: "1", State: "AL", Ownership: "PROPRIETARY", Measures: map[string]float64{m: 1}},
		{CCN: "2", State: "AL", Ownership: "PROPRIETARY", Measures: map[string]float64{m: 2}},
		{CCN: "3", State: "AL", Ownership: "PROPRIETARY", Measures: map[string]float64{m: 3}},
		{CCN: "4", State: "AL", Ownership: "PROPRIETARY", Measures: map[string]float64{m: 4}},
		{CCN: "5", State: "AL", Ownership: "GOVERNMENT"},
	}

	cmpResult, err := Compare(providers, m, model.DimensionOwnership, "PROPRIETARY", "GOVERNMENT")
	require.NoError(t, err)
	require.Len(t, cmpResult.Groups, 2)

	prop := cmpResult.Groups[0]
	assert.Equal(t, []float64{1, 2, 3, 4}, prop.Values)
	require.NotNil(t, prop.Quantiles)
	assert.Equal(t, model.Quantiles{Min: 1, P25: 1.75, Median: 2.5, P75: 3.25, Max: 4}, *prop.Quantiles)

	gov := cmpResult.Groups[1]
	assert.Empty(t, gov.Values)
	assert.Nil(t, gov.Quantiles)

	_, err = Compare(providers, "Bogus", model.DimensionOwnership, "A", "B")
	assert.ErrorIs(t, err, ErrUnknownMeasure)
	_, err = Compare(providers, m, "County", "A", "B")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestCompareBlankGroup(t *testing.T) {
	m := dataset.MeasureQualityStar
	providers := []model.HomeHealthProvider{
		{CCN: "1", State: "AL", Measures: map[string]float64{m: 3}},
		{CCN: "2", State: "", Measures: map[string]float64{m: 5}},
	}

	got, err := Compare(providers, m, model.DimensionState, "AL", "")
	require.NoError(t, err)
	require.Len(t, got.Groups, 2)
	assert.Equal(t, []float64{3}, got.Groups[0].Values)
	assert.Empty(t, got.Groups[1].Values, "blank label must not collect providers missing the dimension")
	assert.Nil(t, got.Groups[1].Quantiles)
}

func TestCompareGroups(t *testing.T) {
	providers := []model.HomeHealthProvider{
		{State: "TX", PPRCategory: "Worse Than National"},
		{State: "AL", PPRCategory: "Better Than National"},
		{State: "TX", PPRCategory: ""},
	}
	groups, err := CompareGroups(providers, model.DimensionPPR)
	require.NoError(t, err)
	assert.Equal(t, []string{"Better Than National", "Worse Than National"}, groups)

	groups, err = CompareGroups(providers, model.DimensionState)
	require.NoError(t, err)
	assert.Equal(t, []string{"AL", "TX"}, groups)
}
