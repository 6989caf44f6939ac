// Package dryrun provides a store that prints intended writes instead of
// performing them.
package dryrun

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"wagesync/internal/ports"
)

type Store struct {
	mu     sync.Mutex
	out    io.Writer
	nextID uint
	geos   map[string]ports.Geography
}

var (
	_ ports.WageRepository = (*Store)(nil)
	_ ports.UnitOfWork     = (*Store)(nil)
)

func NewStore(out io.Writer) *Store {
	if out == nil {
		out = io.Discard
	}
	return &Store{
		out:  out,
		geos: make(map[string]ports.Geography),
	}
}

// WithTx runs fn directly; nothing is ever committed.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) FindGeography(_ context.Context, state string, city string) (ports.Geography, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	geo, ok := s.geos[geoKey(state, city)]
	if !ok {
		return ports.Geography{}, ports.ErrGeographyNotFound
	}
	return geo, nil
}

func (s *Store) CreateGeography(_ context.Context, input ports.GeographyCreate) (ports.Geography, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	geo := ports.Geography{
		ID:        s.nextID,
		State:     strings.ToUpper(input.State),
		StateName: input.StateName,
		City:      input.City,
		Slug:      input.Slug,
	}
	s.geos[geoKey(input.State, input.City)] = geo
	_, err := fmt.Fprintf(s.out, "[dry-run] create geography slug=%s state=%s name=%q\n", geo.Slug, geo.State, geo.StateName)
	return geo, err
}

func (s *Store) FindWageStatistic(context.Context, ports.WageStatisticKey) (ports.WageStatistic, bool, error) {
	return ports.WageStatistic{}, false, nil
}

func (s *Store) ListWageStatistics(context.Context, string) ([]ports.WageStatistic, error) {
	return nil, nil
}

func (s *Store) ListIndustryEmployments(context.Context, string, int) ([]ports.IndustryEmployment, error) {
	return nil, nil
}

func (s *Store) SaveWageStatistic(_ context.Context, input ports.WageStatisticSave) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	geo := "national"
	if input.Key.GeographyID != nil {
		geo = s.slugByID(*input.Key.GeographyID)
	}
	f := input.Figures
	_, err := fmt.Fprintf(
		s.out,
		"[dry-run] upsert wage occupation=%s geography=%s year=%d employment=%s hourly_median=%s annual_median=%s annual_mean=%s source=%s\n",
		input.Key.OccupationKeyword,
		geo,
		input.Key.Year,
		formatInt(f.Employment),
		formatFloat(f.HourlyMedian),
		formatFloat(f.AnnualMedian),
		formatFloat(f.AnnualMean),
		input.Source,
	)
	return true, err
}

func (s *Store) UpsertIndustryEmployment(_ context.Context, input ports.IndustryEmploymentUpsert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(
		s.out,
		"[dry-run] upsert industry occupation=%s industry=%s year=%d title=%q employment=%s pct_of_total=%s\n",
		input.OccupationKeyword,
		input.IndustryCode,
		input.Year,
		input.IndustryTitle,
		formatInt(input.Employment),
		formatFloat(input.PctOfTotal),
	)
	return err
}

func (s *Store) slugByID(id uint) string {
	for _, geo := range s.geos {
		if geo.ID == id {
			return geo.Slug
		}
	}
	return strconv.FormatUint(uint64(id), 10)
}

func geoKey(state, city string) string {
	return strings.ToUpper(strings.TrimSpace(state)) + "|" + strings.TrimSpace(city)
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
