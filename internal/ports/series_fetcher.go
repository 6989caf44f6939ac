package ports

import (
	"context"

	"wagesync/internal/domain/oes"
	"wagesync/internal/domain/wage"
)

// SeriesRequest asks the time-series source for one occupation in one
// geography over a year range.
type SeriesRequest struct {
	Occupation   string
	GeographyKey string
	SeriesIDs    []string
	StartYear    int
	EndYear      int
}

// SeriesFetcher returns one folded record per year present in the source.
type SeriesFetcher interface {
	FetchRecords(ctx context.Context, req SeriesRequest) ([]wage.Record, error)
}

// RowSource yields spreadsheet rows one at a time; it returns io.EOF when
// exhausted.
type RowSource interface {
	Next() (oes.Row, error)
	Close() error
}

// SheetOpener opens a spreadsheet dump. marker selects the sheet of a
// multi-sheet workbook.
type SheetOpener interface {
	Open(path string, marker string) (RowSource, error)
}
