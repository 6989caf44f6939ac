package wage

import "math"

// Record is the normalized shape both ingestion paths produce before a
// write. A nil field means the value was not available.
type Record struct {
	Occupation   string
	GeographyKey string
	Year         int

	HourlyMean   *float64
	HourlyP10    *float64
	HourlyP25    *float64
	HourlyMedian *float64
	HourlyP75    *float64
	HourlyP90    *float64

	AnnualMean   *float64
	AnnualP10    *float64
	AnnualP25    *float64
	AnnualMedian *float64
	AnnualP75    *float64
	AnnualP90    *float64

	Employment       *int64
	JobsPer1000      *float64
	LocationQuotient *float64
	EmploymentRSE    *float64
	WageRSE          *float64
}

// Set routes a measure value into the matching field. Employment is rounded
// to the nearest whole job.
func (r *Record) Set(m Measure, value float64) {
	v := value
	switch m {
	case MeasureHourlyMean:
		r.HourlyMean = &v
	case MeasureAnnualMean:
		r.AnnualMean = &v
	case MeasureEmployment:
		if n, ok := RoundCount(v); ok {
			r.Employment = &n
		}
	case MeasureHourlyP10:
		r.HourlyP10 = &v
	case MeasureHourlyP25:
		r.HourlyP25 = &v
	case MeasureHourlyMedian:
		r.HourlyMedian = &v
	case MeasureAnnualMedian:
		r.AnnualMedian = &v
	case MeasureHourlyP75:
		r.HourlyP75 = &v
	case MeasureHourlyP90:
		r.HourlyP90 = &v
	case MeasureAnnualP10:
		r.AnnualP10 = &v
	case MeasureAnnualP25:
		r.AnnualP25 = &v
	case MeasureAnnualP75:
		r.AnnualP75 = &v
	case MeasureAnnualP90:
		r.AnnualP90 = &v
	}
}

// Empty reports whether no numeric field is populated.
func (r Record) Empty() bool {
	for _, f := range []*float64{
		r.HourlyMean, r.HourlyP10, r.HourlyP25, r.HourlyMedian, r.HourlyP75, r.HourlyP90,
		r.AnnualMean, r.AnnualP10, r.AnnualP25, r.AnnualMedian, r.AnnualP75, r.AnnualP90,
		r.JobsPer1000, r.LocationQuotient, r.EmploymentRSE, r.WageRSE,
	} {
		if f != nil {
			return false
		}
	}
	return r.Employment == nil
}

// RoundCount rounds a count to the nearest integer. Values that do not fit
// in an int64 are reported as unavailable.
func RoundCount(f float64) (int64, bool) {
	r := math.Round(f)
	if math.IsNaN(r) || r >= math.MaxInt64 || r < math.MinInt64 {
		return 0, false
	}
	return int64(r), true
}
