package oes

import (
	"strings"

	"wagesync/internal/domain/wage"
)

const (
	AllIndustriesNAICS = "000000"
	NationalAreaCode   = "99"

	AreaTypeNational = "1"
	AreaTypeState    = "2"

	OccGroupDetailed       = "detailed"
	IndustryGroupAggregate = "cross-industry"
)

// IsWageRow keeps all-industry rows for supported detailed occupations at
// national or state granularity.
func IsWageRow(row Row) bool {
	if strings.TrimSpace(row.NAICS) != AllIndustriesNAICS {
		return false
	}
	if _, ok := wage.OccupationByCode(row.OccCode); !ok {
		return false
	}
	switch strings.TrimSpace(row.AreaType) {
	case AreaTypeNational, AreaTypeState:
	default:
		return false
	}
	return isDetailed(row)
}

// IsIndustryRow keeps national industry-specific rows for supported
// detailed occupations. It is independent of IsWageRow: a row may satisfy
// either, both or neither.
func IsIndustryRow(row Row) bool {
	if strings.TrimSpace(row.Area) != NationalAreaCode {
		return false
	}
	if strings.TrimSpace(row.NAICS) == AllIndustriesNAICS {
		return false
	}
	if _, ok := wage.OccupationByCode(row.OccCode); !ok {
		return false
	}
	if !isDetailed(row) {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(row.IndustryGrp), IndustryGroupAggregate)
}

func isDetailed(row Row) bool {
	return strings.EqualFold(strings.TrimSpace(row.OccGroup), OccGroupDetailed)
}

// SelectSheet prefers the first sheet whose name contains marker
// (case-insensitive) and falls back to the first sheet.
func SelectSheet(names []string, marker string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	needle := strings.ToLower(strings.TrimSpace(marker))
	if needle != "" {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), needle) {
				return name, true
			}
		}
	}
	return names[0], true
}
