package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

const (
	heartAttack  = "Payment for heart attack patients"
	heartFailure = "Payment for heart failure patients"
	avgValue     = "Average Complications and Average Payment"
	lowPayment   = "Less Than the National Average Payment"
	highPayment  = "Greater Than the National Average Payment"
)

func hospitalRow(id, state, city, measure, valueCat, paymentCat string, payment *float64) model.HospitalRecord {
	return model.HospitalRecord{
		FacilityID:      id,
		FacilityName:    "Hospital " + id,
		State:           state,
		City:            city,
		MeasureName:     measure,
		ValueCategory:   valueCat,
		PaymentCategory: paymentCat,
		Payment:         payment,
	}
}

func sampleHospitals() []model.HospitalRecord {
	return []model.HospitalRecord{
		hospitalRow("1", "AL", "DOTHAN", heartAttack, avgValue, lowPayment, ptr(20000)),
		hospitalRow("2", "AL", "DOTHAN", heartAttack, avgValue, lowPayment, ptr(21000.555)),
		hospitalRow("3", "AL", "BOAZ", heartAttack, "", highPayment, ptr(30000)),
		hospitalRow("4", "GA", "ATLANTA", heartAttack, avgValue, lowPayment, nil),
		hospitalRow("5", "GA", "MACON", heartAttack, avgValue, lowPayment, ptr(18000)),
		hospitalRow("1", "AL", "DOTHAN", heartAttack, avgValue, lowPayment, ptr(99999)),
		hospitalRow("1", "AL", "DOTHAN", heartFailure, avgValue, lowPayment, ptr(15000)),
	}
}

func TestBreakdownHospitalCategorySums(t *testing.T) {
	for _, params := range []BreakdownParams{
		{State: AllStates, Measure: "Heart Attack Measure"},
		{State: "AL", Measure: "heart"},
		{State: "GA", Measure: "heart attack"},
	} {
		got := BreakdownHospital(sampleHospitals(), params)
		var byValue, byPayment int
		for _, c := range got.ByValue {
			byValue += c.Count
		}
		for _, c := range got.ByPayment {
			byPayment += c.Count
		}
		assert.Equal(t, got.Rows, byValue, "%+v", params)
		assert.Equal(t, got.Rows, byPayment, "%+v", params)
	}
}

func TestBreakdownHospitalCountsPerMeasure(t *testing.T) {
	got := BreakdownHospital(sampleHospitals(), BreakdownParams{State: "AL", Measure: "heart"})
	assert.Equal(t, 4, got.Rows)
	assert.Equal(t, []model.LabelCount{
		{Label: avgValue, Count: 3},
		{Label: NotAvailableCategory, Count: 1},
	}, got.ByValue)
	assert.Equal(t, []model.LabelCount{
		{Label: lowPayment, Count: 3},
		{Label: highPayment, Count: 1},
	}, got.ByPayment)
}

func TestBreakdownHospitalAllStates(t *testing.T) {
	got := BreakdownHospital(sampleHospitals(), BreakdownParams{
		State:           AllStates,
		Measure:         "Heart Attack Measure",
		ValueCategory:   avgValue,
		PaymentCategory: lowPayment,
	})

	assert.Equal(t, RegionState, got.RegionAxis)
	assert.Equal(t, 5, got.Rows, "duplicate facility rows are counted once")
	assert.Equal(t, []model.LabelCount{{Label: avgValue, Count: 4}, {Label: NotAvailableCategory, Count: 1}}, got.ByValue)

	assert.Equal(t, []model.LabelCount{{Label: "AL", Count: 2}, {Label: "GA", Count: 2}}, got.TopByValue)

	require.Len(t, got.TopByPayment, 2)
	assert.Equal(t, model.RegionAmount{Region: "AL", Amount: 20500.28, Display: "$ 20,500.28"}, got.TopByPayment[0])
	assert.Equal(t, model.RegionAmount{Region: "GA", Amount: 18000, Display: "$ 18,000.00"}, got.TopByPayment[1],
		"unavailable payments are excluded from the mean")
}

func TestBreakdownHospitalSingleStateUsesCities(t *testing.T) {
	got := BreakdownHospital(sampleHospitals(), BreakdownParams{
		State:           "AL",
		Measure:         "Heart Attack Measure",
		ValueCategory:   avgValue,
		PaymentCategory: highPayment,
	})

	assert.Equal(t, RegionCity, got.RegionAxis)
	assert.Equal(t, 3, got.Rows)
	assert.Equal(t, []model.LabelCount{{Label: "DOTHAN", Count: 2}}, got.TopByValue)
	require.Len(t, got.TopByPayment, 1)
	assert.Equal(t, "BOAZ", got.TopByPayment[0].Region)
}

func TestBreakdownHospitalNoMatch(t *testing.T) {
	got := BreakdownHospital(sampleHospitals(), BreakdownParams{State: "TX", Measure: "pneumonia"})
	assert.Equal(t, 0, got.Rows)
	assert.Empty(t, got.ByValue)
	assert.NotNil(t, got.TopByPayment)
}
