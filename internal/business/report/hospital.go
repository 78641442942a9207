package report

import (
	"sort"
	"strings"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/util"
)

// NotAvailableCategory labels hospital rows with a blank category.
const NotAvailableCategory = "Not Available"

// Region axes of the hospital leaderboards.
const (
	RegionState = "State"
	RegionCity  = "City"
)

const regionSize = 5

// BreakdownParams selects hospital rows. Measure is matched as a
// case-insensitive substring of the payment measure name; a trailing
// "Measure" word is ignored.
type BreakdownParams struct {
	State           string
	Measure         string
	ValueCategory   string
	PaymentCategory string
}

// BreakdownHospital counts the matched (facility, measure) rows by value of
// care and payment category, so a facility matched on two measures counts
// twice. It also builds the top regions for the chosen categories. Regions
// are states when every state is selected and cities otherwise.
func BreakdownHospital(records []model.HospitalRecord, params BreakdownParams) model.HospitalBreakdown {
	if params.State == "" {
		params.State = AllStates
	}
	out := model.HospitalBreakdown{
		State:        params.State,
		Measure:      params.Measure,
		RegionAxis:   RegionCity,
		ByValue:      []model.LabelCount{},
		ByPayment:    []model.LabelCount{},
		TopByValue:   []model.LabelCount{},
		TopByPayment: []model.RegionAmount{},
	}
	if params.State == AllStates {
		out.RegionAxis = RegionState
	}

	rows := filterHospital(records, params)
	out.Rows = len(rows)
	if len(rows) == 0 {
		return out
	}

	byValue := make(map[string]int)
	byPayment := make(map[string]int)
	for _, r := range rows {
		byValue[categoryLabel(r.ValueCategory)]++
		byPayment[categoryLabel(r.PaymentCategory)]++
	}
	out.ByValue = sortedCounts(byValue)
	out.ByPayment = sortedCounts(byPayment)

	facilities := make(map[string]map[string]struct{})
	for _, r := range rows {
		region := hospitalRegion(r, out.RegionAxis)
		if region == "" || r.ValueCategory != params.ValueCategory {
			continue
		}
		if facilities[region] == nil {
			facilities[region] = make(map[string]struct{})
		}
		facilities[region][r.FacilityID] = struct{}{}
	}
	counts := make(map[string]int, len(facilities))
	for region, ids := range facilities {
		counts[region] = len(ids)
	}
	out.TopByValue = sortedCounts(counts)
	if len(out.TopByValue) > regionSize {
		out.TopByValue = out.TopByValue[:regionSize]
	}

	payments := make(map[string][]float64)
	for _, r := range rows {
		region := hospitalRegion(r, out.RegionAxis)
		if region == "" || r.Payment == nil || r.PaymentCategory != params.PaymentCategory {
			continue
		}
		payments[region] = append(payments[region], *r.Payment)
	}
	for region, amounts := range payments {
		m, _ := mean(amounts)
		m = round(m, 2)
		out.TopByPayment = append(out.TopByPayment, model.RegionAmount{Region: region, Amount: m, Display: util.FormatDollars(m)})
	}
	sort.Slice(out.TopByPayment, func(i, j int) bool {
		a, b := out.TopByPayment[i], out.TopByPayment[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Region < b.Region
	})
	if len(out.TopByPayment) > regionSize {
		out.TopByPayment = out.TopByPayment[:regionSize]
	}
	return out
}

// filterHospital applies the state and measure filters and keeps the first
// row of each (facility, measure) pair.
func filterHospital(records []model.HospitalRecord, params BreakdownParams) []model.HospitalRecord {
	query := util.NormalizeMeasureQuery(params.Measure)
	seen := make(map[[2]string]struct{})
	var out []model.HospitalRecord
	for _, r := range records {
		if params.State != AllStates && r.State != params.State {
			continue
		}
		if !strings.Contains(strings.ToLower(r.MeasureName), query) {
			continue
		}
		key := [2]string{r.FacilityID, r.MeasureName}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

func categoryLabel(c string) string {
	if strings.TrimSpace(c) == "" {
		return NotAvailableCategory
	}
	return c
}

func hospitalRegion(r model.HospitalRecord, axis string) string {
	if axis == RegionState {
		return r.State
	}
	return r.City
}
