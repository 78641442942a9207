package dataset

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/util"
)

var errNoSource = errors.New("no source configured")

// Snapshot is the read-only set of tables loaded at start-up. It is shared
// by reference across requests and must not be mutated after NewSnapshot.
type Snapshot struct {
	HomeHealth []model.HomeHealthProvider
	Hospice    []model.HospiceRecord
	Hospital   []model.HospitalRecord
	Options    model.Options
	Stats      []model.LoadStats
	LoadedAt   time.Time
}

// NewSnapshot wraps loaded tables and harvests their selection lists.
func NewSnapshot(homeHealth []model.HomeHealthProvider, hospice []model.HospiceRecord, hospital []model.HospitalRecord, stats ...model.LoadStats) *Snapshot {
	return &Snapshot{
		HomeHealth: homeHealth,
		Hospice:    hospice,
		Hospital:   hospital,
		Options:    buildOptions(homeHealth, hospice, hospital),
		Stats:      stats,
		LoadedAt:   time.Now().UTC(),
	}
}

// Fingerprint identifies the loaded data by source and row counts.
func (s *Snapshot) Fingerprint() string {
	parts := []string{
		strconv.Itoa(len(s.HomeHealth)),
		strconv.Itoa(len(s.Hospice)),
		strconv.Itoa(len(s.Hospital)),
	}
	for _, st := range s.Stats {
		parts = append(parts, st.Dataset, st.Source, strconv.Itoa(st.Rows))
	}
	return util.HashKey(parts...)
}

func buildOptions(homeHealth []model.HomeHealthProvider, hospice []model.HospiceRecord, hospital []model.HospitalRecord) model.Options {
	hhStates := newStringSet()
	ownership := newStringSet()
	ppr := newStringSet()
	for _, p := range homeHealth {
		hhStates.add(p.State)
		ownership.add(p.Ownership)
		ppr.add(p.PPRCategory)
	}

	hsStates := newStringSet()
	hsMeasures := newStringSet()
	startYears := make(map[int]struct{})
	endYears := make(map[int]struct{})
	for _, r := range hospice {
		hsStates.add(r.State)
		hsMeasures.add(r.MeasureName)
		if r.Period != nil {
			startYears[r.Period.Start.Year()] = struct{}{}
			if !r.Period.End.IsZero() {
				endYears[r.Period.End.Year()] = struct{}{}
			}
		}
	}

	hoStates := newStringSet()
	hoMeasures := newStringSet()
	valueCats := newStringSet()
	paymentCats := newStringSet()
	for _, r := range hospital {
		hoStates.add(r.State)
		hoMeasures.add(util.CleanMeasureLabel(r.MeasureName))
		valueCats.add(r.ValueCategory)
		paymentCats.add(r.PaymentCategory)
	}

	return model.Options{
		HomeHealthStates:  hhStates.sorted(),
		OwnershipTypes:    ownership.sorted(),
		PPRCategories:     ppr.sorted(),
		CompareDimensions: []string{model.DimensionState, model.DimensionOwnership, model.DimensionPPR},
		HospiceStates:     hsStates.sorted(),
		HospiceMeasures:   hsMeasures.sorted(),
		HospiceStartYears: sortedYears(startYears),
		HospiceEndYears:   sortedYears(endYears),
		HospitalStates:    hoStates.sorted(),
		HospitalMeasures:  hoMeasures.sorted(),
		ValueCategories:   valueCats.sorted(),
		PaymentCategories: paymentCats.sorted(),
	}
}

type stringSet map[string]struct{}

func newStringSet() stringSet { return make(stringSet) }

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedYears(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for y := range set {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
