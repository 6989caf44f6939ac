package ingest

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"wagesync/internal/domain/oes"
	"wagesync/internal/domain/wage"
	"wagesync/internal/infrastructure/persistence/gormstore/model"
	gormrepo "wagesync/internal/infrastructure/persistence/gormstore/repository"
	gormuow "wagesync/internal/infrastructure/persistence/gormstore/uow"
	"wagesync/internal/ports"
)

func setupStore(t *testing.T) (*gormrepo.WageRepository, *gormuow.UnitOfWork, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "wages.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return gormrepo.NewWageRepository(db), gormuow.NewUnitOfWork(db), db
}

func ptr[T any](v T) *T { return &v }

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

// flakyRepository fails SaveWageStatistic for the listed occupation/year
// pairs and delegates everything else.
type flakyRepository struct {
	ports.WageRepository
	failOn map[string]int
}

var errInjected = errors.New("injected save failure")

func (f *flakyRepository) SaveWageStatistic(ctx context.Context, input ports.WageStatisticSave) (bool, error) {
	if year, ok := f.failOn[input.Key.OccupationKeyword]; ok && year == input.Key.Year {
		return false, errInjected
	}
	return f.WageRepository.SaveWageStatistic(ctx, input)
}

type fetchCall struct {
	occupation string
	geography  string
	seriesIDs  int
	startYear  int
	endYear    int
}

type fakeFetcher struct {
	calls   []fetchCall
	records map[string][]wage.Record
	fail    map[string]error
}

func pairKey(occupation, geography string) string { return occupation + "@" + geography }

func (f *fakeFetcher) FetchRecords(_ context.Context, req ports.SeriesRequest) ([]wage.Record, error) {
	f.calls = append(f.calls, fetchCall{
		occupation: req.Occupation,
		geography:  req.GeographyKey,
		seriesIDs:  len(req.SeriesIDs),
		startYear:  req.StartYear,
		endYear:    req.EndYear,
	})
	key := pairKey(req.Occupation, req.GeographyKey)
	if err := f.fail[key]; err != nil {
		return nil, err
	}
	return f.records[key], nil
}

type sliceSource struct {
	sheet  string
	rows   []oes.Row
	pos    int
	closed bool
}

func (s *sliceSource) Sheet() string { return s.sheet }

func (s *sliceSource) Next() (oes.Row, error) {
	if s.pos >= len(s.rows) {
		return oes.Row{}, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

type fakeOpener struct {
	source    *sliceSource
	gotPath   string
	gotMarker string
	openErr   error
}

func (o *fakeOpener) Open(path string, marker string) (ports.RowSource, error) {
	o.gotPath = path
	o.gotMarker = marker
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.source, nil
}

type recordingReporter struct {
	started  []string
	finished []string
	failed   []string
	errs     []error
	scanned  int
}

func (r *recordingReporter) FetchStarted(occupation string, geography string) {
	r.started = append(r.started, pairKey(occupation, geography))
}

func (r *recordingReporter) FetchFinished(occupation string, geography string, _ int, err error) {
	if err != nil {
		r.failed = append(r.failed, pairKey(occupation, geography))
		r.errs = append(r.errs, err)
		return
	}
	r.finished = append(r.finished, pairKey(occupation, geography))
}

func (r *recordingReporter) ImportScanned(_ string, rows int) {
	r.scanned = rows
}
