package bls

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"wagesync/internal/domain/wage"
)

// Annual observations carry one of these period codes. Both appear in
// OES responses.
// TODO: confirm against current API docs whether other annual codes exist.
var annualPeriods = map[string]struct{}{
	"A01": {},
	"M13": {},
}

// IsAnnualPeriod reports whether an observation period is an annual
// aggregate.
func IsAnnualPeriod(period string) bool {
	_, ok := annualPeriods[strings.ToUpper(strings.TrimSpace(period))]
	return ok
}

// Fold groups observations by year and routes each value into the field
// named by its series' measure suffix. Non-annual periods, unknown
// suffixes and unparsable values are dropped individually. Records are
// returned in ascending year order.
func Fold(resp Response, occupation, geographyKey string) []wage.Record {
	if resp.Results == nil {
		return nil
	}

	byYear := make(map[int]*wage.Record)
	for _, series := range resp.Results.Series {
		measure, err := wage.DecodeMeasure(series.SeriesID)
		if err != nil {
			continue
		}
		for _, obs := range series.Data {
			if !IsAnnualPeriod(obs.Period) {
				continue
			}
			year, err := strconv.Atoi(strings.TrimSpace(obs.Year))
			if err != nil || year <= 0 {
				continue
			}

			rec, exists := byYear[year]
			if !exists {
				rec = &wage.Record{Occupation: occupation, GeographyKey: geographyKey, Year: year}
				byYear[year] = rec
			}
			if value, ok := parseValue(obs.Value); ok {
				rec.Set(measure, value)
			}
		}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]wage.Record, 0, len(years))
	for _, year := range years {
		out = append(out, *byYear[year])
	}
	return out
}

func parseValue(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
