// Package spreadsheet decodes OES data dumps (.xlsx or .csv) into rows.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"

	"wagesync/internal/domain/oes"
	"wagesync/internal/errs"
	"wagesync/internal/ports"
)

var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

type Reader struct {
	sheet   string
	decoder *csvutil.Decoder
	closers []io.Closer
	line    int
}

var _ ports.RowSource = (*Reader)(nil)

// Open picks the decoder from the file extension. For workbooks the sheet
// is chosen with oes.SelectSheet(marker).
func Open(path string, marker string) (*Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return openWorkbook(path, marker)
	case ".csv":
		return openCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func openWorkbook(path string, marker string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "open workbook %q", path)
	}

	sheet, ok := oes.SelectSheet(f.GetSheetList(), marker)
	if !ok {
		_ = f.Close()
		return nil, fmt.Errorf("workbook %q has no sheets", path)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, errs.Wrapf(err, "iterate sheet %q", sheet)
	}

	r, err := newReader(sheet, &sheetRows{rows: rows}, rows, f)
	if err != nil {
		_ = rows.Close()
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

func openCSV(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "open csv %q", path)
	}

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	r, err := newReader(filepath.Base(path), cr, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

func newReader(sheet string, src csvutil.Reader, closers ...io.Closer) (*Reader, error) {
	header, err := src.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sheet %q is empty", sheet)
		}
		return nil, errs.Wrapf(err, "read header of %q", sheet)
	}
	header = normalizeHeader(header)

	dec, err := csvutil.NewDecoder(&paddedReader{src: src, width: len(header)}, header...)
	if err != nil {
		return nil, errs.Wrapf(err, "build decoder for %q", sheet)
	}

	return &Reader{sheet: sheet, decoder: dec, closers: closers}, nil
}

// Sheet names the sheet (or file) rows are read from.
func (r *Reader) Sheet() string { return r.sheet }

// Next returns io.EOF once all rows are consumed.
func (r *Reader) Next() (oes.Row, error) {
	var row oes.Row
	r.line++
	if err := r.decoder.Decode(&row); err != nil {
		if errors.Is(err, io.EOF) {
			return oes.Row{}, io.EOF
		}
		return oes.Row{}, errs.Wrapf(err, "decode row %d of %q", r.line+1, r.sheet)
	}
	return row, nil
}

func (r *Reader) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		out[i] = strings.ToUpper(strings.TrimSpace(h))
	}
	return out
}

// sheetRows adapts excelize's row iterator to csvutil.Reader.
type sheetRows struct {
	rows *excelize.Rows
}

func (s *sheetRows) Read() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns(excelize.Options{RawCellValue: true})
}

// paddedReader gives every record the header's width; workbooks drop
// trailing empty cells and csvutil rejects ragged records.
type paddedReader struct {
	src   csvutil.Reader
	width int
}

func (p *paddedReader) Read() ([]string, error) {
	rec, err := p.src.Read()
	if err != nil {
		return nil, err
	}
	switch {
	case len(rec) < p.width:
		padded := make([]string, p.width)
		copy(padded, rec)
		return padded, nil
	case len(rec) > p.width:
		return rec[:p.width], nil
	default:
		return rec, nil
	}
}

// Opener adapts Open to ports.SheetOpener.
type Opener struct{}

var _ ports.SheetOpener = Opener{}

func (Opener) Open(path string, marker string) (ports.RowSource, error) {
	r, err := Open(path, marker)
	if err != nil {
		return nil, err
	}
	return r, nil
}
