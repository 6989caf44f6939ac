package oes

import (
	"fmt"
	"strings"

	"wagesync/internal/domain/wage"
)

// IndustryRecord is one occupation's employment within one industry.
type IndustryRecord struct {
	Occupation    string
	IndustryCode  string
	IndustryTitle string
	Year          int

	Employment   *int64
	AnnualMean   *float64
	AnnualMedian *float64
	HourlyMean   *float64
	PctOfTotal   *float64
}

// GeographyKey maps a wage row to "national" or its lowercased state code.
func GeographyKey(row Row) (string, error) {
	switch strings.TrimSpace(row.AreaType) {
	case AreaTypeNational:
		return wage.NationalKey, nil
	case AreaTypeState:
		state := strings.ToLower(strings.TrimSpace(row.PrimState))
		if state == "" {
			return "", fmt.Errorf("%w: state row %q has no PRIM_STATE", wage.ErrUnknownGeography, row.AreaTitle)
		}
		return state, nil
	default:
		return "", fmt.Errorf("%w: area type %q", wage.ErrUnknownGeography, row.AreaType)
	}
}

// WageRecord converts a row accepted by IsWageRow.
func WageRecord(row Row, year int) (wage.Record, error) {
	occ, ok := wage.OccupationByCode(row.OccCode)
	if !ok {
		return wage.Record{}, fmt.Errorf("%w: code %q", wage.ErrUnknownOccupation, row.OccCode)
	}
	geo, err := GeographyKey(row)
	if err != nil {
		return wage.Record{}, err
	}

	return wage.Record{
		Occupation:   occ.Slug,
		GeographyKey: geo,
		Year:         year,

		HourlyMean:   Float(row.HMean),
		HourlyP10:    Float(row.HPct10),
		HourlyP25:    Float(row.HPct25),
		HourlyMedian: Float(row.HMedian),
		HourlyP75:    Float(row.HPct75),
		HourlyP90:    Float(row.HPct90),

		AnnualMean:   Float(row.AMean),
		AnnualP10:    Float(row.APct10),
		AnnualP25:    Float(row.APct25),
		AnnualMedian: Float(row.AMedian),
		AnnualP75:    Float(row.APct75),
		AnnualP90:    Float(row.APct90),

		Employment:       Count(row.TotEmp),
		JobsPer1000:      Float(row.Jobs1000),
		LocationQuotient: Float(row.LocQuotient),
		EmploymentRSE:    Float(row.EmpPRSE),
		WageRSE:          Float(row.MeanPRSE),
	}, nil
}

// IndustryBreakdown converts a row accepted by IsIndustryRow.
func IndustryBreakdown(row Row, year int) (IndustryRecord, error) {
	occ, ok := wage.OccupationByCode(row.OccCode)
	if !ok {
		return IndustryRecord{}, fmt.Errorf("%w: code %q", wage.ErrUnknownOccupation, row.OccCode)
	}
	code := strings.TrimSpace(row.NAICS)
	if code == "" {
		return IndustryRecord{}, fmt.Errorf("industry row for %s has no NAICS code", occ.Slug)
	}

	return IndustryRecord{
		Occupation:    occ.Slug,
		IndustryCode:  code,
		IndustryTitle: strings.TrimSpace(row.NAICSTitle),
		Year:          year,
		Employment:    Count(row.TotEmp),
		AnnualMean:    Float(row.AMean),
		AnnualMedian:  Float(row.AMedian),
		HourlyMean:    Float(row.HMean),
		PctOfTotal:    Float(row.PctTotal),
	}, nil
}
