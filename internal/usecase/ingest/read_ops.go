package ingest

import (
	"context"
	"errors"
	"sort"

	"wagesync/internal/domain/wage"
	"wagesync/internal/errs"
	"wagesync/internal/ports"
)

// WageRow is a stored wage statistic with its geography resolved to a key.
type WageRow struct {
	GeographyKey string
	ports.WageStatistic
}

type WageListing struct {
	Occupation wage.Occupation
	Wages      []WageRow
	Industries []ports.IndustryEmployment
}

// ListWages returns everything stored for one occupation: wage rows
// ordered nationwide first, then by geography and year, plus the industry
// breakdown of the most recent year that has one.
func (s *Service) ListWages(ctx context.Context, slug string) (WageListing, error) {
	if ctx == nil {
		return WageListing{}, errors.New("context is required")
	}
	if s.repo == nil {
		return WageListing{}, errors.New("wage repository is required")
	}

	occ, err := wage.LookupOccupation(slug)
	if err != nil {
		return WageListing{}, err
	}

	stats, err := s.repo.ListWageStatistics(ctx, occ.Slug)
	if err != nil {
		return WageListing{}, errs.Wrap(err, "list wage statistics")
	}

	rows := make([]WageRow, 0, len(stats))
	latest := 0
	for _, st := range stats {
		key := wage.NationalKey
		if st.GeographySlug != "" {
			key = st.GeographySlug
		}
		rows = append(rows, WageRow{GeographyKey: key, WageStatistic: st})
		if st.Key.Year > latest {
			latest = st.Key.Year
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.GeographyKey == wage.NationalKey) != (b.GeographyKey == wage.NationalKey) {
			return a.GeographyKey == wage.NationalKey
		}
		if a.GeographyKey != b.GeographyKey {
			return a.GeographyKey < b.GeographyKey
		}
		return a.Key.Year < b.Key.Year
	})

	var industries []ports.IndustryEmployment
	if latest > 0 {
		industries, err = s.repo.ListIndustryEmployments(ctx, occ.Slug, latest)
		if err != nil {
			return WageListing{}, errs.Wrap(err, "list industry employments")
		}
	}

	return WageListing{Occupation: occ, Wages: rows, Industries: industries}, nil
}
