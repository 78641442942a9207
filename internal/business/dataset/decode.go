package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/util"
)

func decodeHomeHealth(t table, stats *model.LoadStats) ([]model.HomeHealthProvider, error) {
	cols := newColumnIndex(t.Header())
	if col := cols.missing(homeHealthRequired()); col != "" {
		return nil, &DataLoadError{Dataset: HomeHealthDataset, Source: stats.Source, Column: col}
	}

	var out []model.HomeHealthProvider
	for {
		record, err := t.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", stats.Rows+2, err)
		}
		stats.Rows++

		p := model.HomeHealthProvider{
			CCN:         util.CleanIdentifier(cols.get(record, ColCCN)),
			Name:        cols.get(record, ColProviderName),
			State:       cols.get(record, ColState),
			City:        cols.get(record, ColCity),
			Ownership:   cols.get(record, ColOwnership),
			PPRCategory: cols.get(record, ColPPR),
			Offers:      make(map[model.Service]bool, len(model.Services)),
			Measures:    make(map[string]float64, len(HomeHealthMeasures)),
		}
		for _, svc := range model.Services {
			raw := cols.get(record, OfferColumns[svc])
			v, known := parseFlag(raw)
			if !known && raw != "" {
				stats.MissingValues++
			}
			p.Offers[svc] = v
		}
		for _, m := range HomeHealthMeasures {
			v, missing, invalid := parseMeasure(cols.get(record, m))
			if invalid {
				stats.MissingValues++
			}
			if !missing {
				p.Measures[m] = v
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeHospice(t table, stats *model.LoadStats) ([]model.HospiceRecord, error) {
	cols := newColumnIndex(t.Header())
	if col := cols.missing(hospiceRequired); col != "" {
		return nil, &DataLoadError{Dataset: HospiceDataset, Source: stats.Source, Column: col}
	}

	var out []model.HospiceRecord
	for {
		record, err := t.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", stats.Rows+2, err)
		}
		stats.Rows++

		r := model.HospiceRecord{
			CCN:          util.CleanIdentifier(cols.get(record, ColCCN)),
			FacilityName: cols.get(record, ColFacilityName),
			State:        cols.get(record, ColState),
			County:       cols.get(record, ColCounty),
			City:         cols.get(record, ColCity),
			MeasureCode:  cols.get(record, ColMeasureCode),
			MeasureName:  cols.get(record, ColMeasureName),
		}

		raw := cols.get(record, ColScore)
		v, missing, invalid := parseMeasure(raw)
		if invalid {
			stats.MissingValues++
		}
		r.Score = model.Score{Value: v, Available: !missing, Raw: raw}

		start, okStart := parseDate(cols.get(record, ColStartDate))
		end, okEnd := parseDate(cols.get(record, ColEndDate))
		switch {
		case !okStart:
			stats.MissingValues++
		case !okEnd:
			stats.MissingValues++
			r.Period = &model.MeasurementPeriod{Start: start}
		case end.Before(start):
			stats.InvalidPeriods++
		default:
			r.Period = &model.MeasurementPeriod{Start: start, End: end}
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeHospital(t table, stats *model.LoadStats) ([]model.HospitalRecord, error) {
	cols := newColumnIndex(t.Header())
	if col := cols.missing(hospitalRequired); col != "" {
		return nil, &DataLoadError{Dataset: HospitalDataset, Source: stats.Source, Column: col}
	}

	var out []model.HospitalRecord
	for {
		record, err := t.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", stats.Rows+2, err)
		}
		stats.Rows++

		r := model.HospitalRecord{
			FacilityID:      util.CleanIdentifier(cols.get(record, ColFacilityID)),
			FacilityName:    cols.get(record, ColFacilityName),
			State:           cols.get(record, ColState),
			County:          cols.get(record, ColCounty),
			City:            cols.get(record, ColCity),
			MeasureName:     cols.get(record, ColPaymentMeasureName),
			PaymentCategory: cols.get(record, ColPaymentCategory),
			ValueCategory:   cols.get(record, ColValueCategory),
			PaymentRaw:      cols.get(record, ColPayment),
		}
		if !util.IsNotAvailable(r.PaymentRaw) {
			amount, err := util.ParseCurrency(r.PaymentRaw)
			if err != nil {
				stats.MissingValues++
			} else {
				r.Payment = &amount
			}
		}
		out = append(out, r)
	}
	return out, nil
}
