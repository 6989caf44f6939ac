package wage

import (
	"fmt"
	"strings"
)

const (
	SeriesIDLength = 25

	nationwidePrefix    = "OEUN"
	regionalPrefix      = "OEUS"
	areaCodeWidth       = 2
	occupationCodeWidth = 6
	measureCodeWidth    = 2
)

var (
	nationwideFiller = strings.Repeat("0", 13)
	regionalFiller   = strings.Repeat("0", 11)
)

// EncodeSeriesID builds the 25 character OES series id. Inputs are expected
// to be validated already; a malformed input is a programming error and
// panics.
func EncodeSeriesID(areaCode, occupationCode string, measure Measure) string {
	if len(areaCode) != areaCodeWidth || !isDigits(areaCode) {
		panic(fmt.Sprintf("wage: malformed area code %q", areaCode))
	}
	if len(occupationCode) != occupationCodeWidth || !isDigits(occupationCode) {
		panic(fmt.Sprintf("wage: malformed occupation code %q", occupationCode))
	}
	if len(measure) != measureCodeWidth || !isDigits(string(measure)) {
		panic(fmt.Sprintf("wage: malformed measure code %q", string(measure)))
	}

	var id string
	if areaCode == NationwideAreaCode {
		id = nationwidePrefix + nationwideFiller + occupationCode + string(measure)
	} else {
		id = regionalPrefix + areaCode + regionalFiller + occupationCode + string(measure)
	}
	if len(id) != SeriesIDLength {
		panic(fmt.Sprintf("wage: encoded series id %q has length %d, want %d", id, len(id), SeriesIDLength))
	}
	return id
}

// DecodeMeasure reads the measure suffix. The suffix sits at the same
// position in both layouts.
func DecodeMeasure(seriesID string) (Measure, error) {
	id := strings.TrimSpace(seriesID)
	if len(id) != SeriesIDLength {
		return "", fmt.Errorf("%w: %q has length %d", ErrInvalidSeriesID, seriesID, len(id))
	}
	return ParseMeasure(id[SeriesIDLength-measureCodeWidth:])
}

// SeriesIDsForOccupation returns one series id per supported measure.
func SeriesIDsForOccupation(slug, geographyKey string) ([]string, error) {
	occ, err := LookupOccupation(slug)
	if err != nil {
		return nil, err
	}
	area, err := LookupGeography(geographyKey)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(measures))
	for _, m := range measures {
		ids = append(ids, EncodeSeriesID(area.Code, occ.Code, m))
	}
	return ids, nil
}
