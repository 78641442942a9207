package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/dataset"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

func TestDashboardSummaryIsACopy(t *testing.T) {
	m := dataset.MeasureQualityStar
	snap := dataset.NewSnapshot([]model.HomeHealthProvider{
		provider("1", "AL", true, map[string]float64{m: 4}),
		provider("2", "AL", false, map[string]float64{m: 2}),
	}, nil, nil)
	dash := NewDashboard(snap)

	first := dash.Summary()
	require.Len(t, first.Rows, 1)
	require.NotNil(t, first.Rows[0].QualityOfCare)

	first.Rows[0].State = "ZZ"
	*first.Rows[0].QualityOfCare = 0
	first.Rows[0].OfferingPct[model.ServiceNursing] = -1
	first.Rows[0].OfferingCount[model.ServiceNursing] = 99
	first.TotalProviders = 0

	second := dash.Summary()
	assert.Equal(t, "AL", second.Rows[0].State)
	assert.Equal(t, 3.0, *second.Rows[0].QualityOfCare)
	assert.Equal(t, 50.0, second.Rows[0].OfferingPct[model.ServiceNursing])
	assert.Equal(t, 1, second.Rows[0].OfferingCount[model.ServiceNursing])
	assert.Equal(t, 2, second.TotalProviders)

	view, err := dash.MapView(MetricQualityOfCare, AllStates)
	require.NoError(t, err)
	require.Len(t, view.Points, 1)
	assert.Equal(t, 3.0, *view.Points[0].Value)
	*view.Points[0].Value = 0
	assert.Equal(t, 3.0, *dash.Summary().Rows[0].QualityOfCare)
}
