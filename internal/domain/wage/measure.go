package wage

import "fmt"

// Measure is the two-digit data type suffix of a series id.
type Measure string

const (
	MeasureHourlyMean   Measure = "01"
	MeasureAnnualMean   Measure = "02"
	MeasureEmployment   Measure = "03"
	MeasureHourlyP10    Measure = "04"
	MeasureHourlyP25    Measure = "05"
	MeasureHourlyMedian Measure = "06"
	MeasureAnnualMedian Measure = "07"
	MeasureHourlyP75    Measure = "08"
	MeasureHourlyP90    Measure = "09"
	MeasureAnnualP10    Measure = "10"
	MeasureAnnualP25    Measure = "11"
	MeasureAnnualP75    Measure = "12"
	MeasureAnnualP90    Measure = "13"
)

var measures = []Measure{
	MeasureHourlyMean,
	MeasureAnnualMean,
	MeasureEmployment,
	MeasureHourlyP10,
	MeasureHourlyP25,
	MeasureHourlyMedian,
	MeasureAnnualMedian,
	MeasureHourlyP75,
	MeasureHourlyP90,
	MeasureAnnualP10,
	MeasureAnnualP25,
	MeasureAnnualP75,
	MeasureAnnualP90,
}

var measureNames = map[Measure]string{
	MeasureHourlyMean:   "hourly_mean",
	MeasureAnnualMean:   "annual_mean",
	MeasureEmployment:   "employment",
	MeasureHourlyP10:    "hourly_p10",
	MeasureHourlyP25:    "hourly_p25",
	MeasureHourlyMedian: "hourly_median",
	MeasureAnnualMedian: "annual_median",
	MeasureHourlyP75:    "hourly_p75",
	MeasureHourlyP90:    "hourly_p90",
	MeasureAnnualP10:    "annual_p10",
	MeasureAnnualP25:    "annual_p25",
	MeasureAnnualP75:    "annual_p75",
	MeasureAnnualP90:    "annual_p90",
}

// Measures returns the 13 supported measures.
func Measures() []Measure {
	out := make([]Measure, len(measures))
	copy(out, measures)
	return out
}

func ParseMeasure(code string) (Measure, error) {
	m := Measure(code)
	if _, ok := measureNames[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMeasure, code)
	}
	return m, nil
}

func (m Measure) String() string {
	if name, ok := measureNames[m]; ok {
		return name
	}
	return "measure(" + string(m) + ")"
}
