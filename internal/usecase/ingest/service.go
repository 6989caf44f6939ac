package ingest

import (
	"time"

	"wagesync/internal/ports"
)

const (
	SourceAPI         = "bls_api"
	SourceSpreadsheet = "oes_spreadsheet"
)

// Settings carries the configured defaults a run falls back to when the
// caller leaves a field unset.
type Settings struct {
	DefaultProfessions []string
	StartYear          int
	EndYear            int
	RequestDelay       time.Duration
	SheetMarker        string
	ImportYear         int
}

type Service struct {
	repo     ports.WageRepository
	uow      ports.UnitOfWork
	fetcher  ports.SeriesFetcher
	opener   ports.SheetOpener
	settings Settings
}

// NewService wires ingestion usecases. fetcher and opener may be nil when
// only one path is used.
func NewService(repo ports.WageRepository, uow ports.UnitOfWork, fetcher ports.SeriesFetcher, opener ports.SheetOpener, settings Settings) *Service {
	return &Service{
		repo:     repo,
		uow:      uow,
		fetcher:  fetcher,
		opener:   opener,
		settings: settings,
	}
}

func (s *Service) writer() *Writer {
	return NewWriter(s.repo, s.uow)
}

// Tally counts outcomes of one batch.
type Tally struct {
	Fetched int
	Saved   int
	Errored int
}

func (t *Tally) Add(other Tally) {
	t.Fetched += other.Fetched
	t.Saved += other.Saved
	t.Errored += other.Errored
}

// Reporter receives per-pair progress of a sync and the scan progress of an
// import. Pass nil (or NopReporter) for silent runs.
type Reporter interface {
	FetchStarted(occupation string, geography string)
	FetchFinished(occupation string, geography string, records int, err error)
	ImportScanned(sheet string, rows int)
}

type NopReporter struct{}

func (NopReporter) FetchStarted(string, string)             {}
func (NopReporter) FetchFinished(string, string, int, error) {}
func (NopReporter) ImportScanned(string, int)                {}

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return NopReporter{}
	}
	return r
}

type SyncInput struct {
	Professions    []string
	AllProfessions bool
	States         []string
	AllStates      bool
	StartYear      int
	EndYear        int
}

type SyncResult struct {
	Pairs       int
	FailedPairs int
	Tally
}

type ImportInput struct {
	Path        string
	Year        int
	SheetMarker string
}

type ImportResult struct {
	Sheet        string
	Rows         int
	WageRows     int
	IndustryRows int
	Wages        Tally
	Industries   Tally
}
