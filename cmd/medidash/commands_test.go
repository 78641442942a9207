package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

func TestPrintSummaryTable(t *testing.T) {
	q := 3.5
	summary := model.StateSummary{
		TotalProviders: 4,
		Rows: []model.SummaryRow{
			{State: "A", Providers: 3, QualityOfCare: &q, OfferingPct: map[model.Service]float64{model.ServiceNursing: 66.7}},
			{State: "B", Providers: 1, OfferingPct: map[model.Service]float64{model.ServiceNursing: 100}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printSummaryTable(&buf, summary))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "66.7")
	assert.Contains(t, lines[1], "3.50")
	assert.Contains(t, lines[2], "100.0")
	assert.True(t, strings.HasPrefix(lines[3], "TOTAL"))
	assert.Contains(t, lines[3], "4")
}

func TestSourcesFlagOverrides(t *testing.T) {
	cfg.HomeHealthData = "hh.csv"
	cfg.HospiceData = "hs.csv"
	cfg.HospitalData = "ho.csv"
	hospicePath = "override.parquet"
	defer func() { hospicePath = "" }()

	src := sources()
	assert.Equal(t, "hh.csv", src.HomeHealth)
	assert.Equal(t, "override.parquet", src.Hospice)
	assert.Equal(t, "ho.csv", src.Hospital)
}
