package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/domain/oes"
	"wagesync/internal/domain/wage"
	"wagesync/internal/errs"
)

const scanReportEvery = 5000

// Import reads a spreadsheet dump and writes both the wage rows and the
// national industry breakdown. A row may feed either path, both or
// neither. Conversion failures are counted per row.
func (s *Service) Import(ctx context.Context, input ImportInput, reporter Reporter) (ImportResult, error) {
	if ctx == nil {
		return ImportResult{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ImportResult{}, errs.Wrap(err, "check context")
	}
	if s.opener == nil {
		return ImportResult{}, errors.New("sheet opener is required")
	}
	reporter = reporterOrNop(reporter)

	path := strings.TrimSpace(input.Path)
	if path == "" {
		return ImportResult{}, errors.New("file path is required")
	}
	year := firstPositive(input.Year, s.settings.ImportYear)
	if year <= 0 {
		return ImportResult{}, errors.New("data year is required")
	}
	marker := strings.TrimSpace(input.SheetMarker)
	if marker == "" {
		marker = s.settings.SheetMarker
	}

	source, err := s.opener.Open(path, marker)
	if err != nil {
		return ImportResult{}, err
	}
	defer source.Close()

	result := ImportResult{Sheet: sheetName(source, path)}
	runCtx := logging.WithAttrs(ctx,
		slog.String("component", "ingest.import"),
		slog.String("file", path),
		slog.String("sheet", result.Sheet),
		slog.Int("year", year),
	)
	logging.Info(runCtx, "import started")

	var (
		wages      []wage.Record
		industries []oes.IndustryRecord
	)
	for {
		row, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, errs.Wrap(err, "read spreadsheet row")
		}
		result.Rows++
		if result.Rows%scanReportEvery == 0 {
			reporter.ImportScanned(result.Sheet, result.Rows)
			if err := ctx.Err(); err != nil {
				return result, errs.Wrap(err, "import interrupted")
			}
		}

		if oes.IsWageRow(row) {
			result.WageRows++
			rec, err := oes.WageRecord(row, year)
			if err != nil {
				result.Wages.Errored++
				logging.Warn(runCtx, "wage row skipped", slog.Int("row", result.Rows+1), slog.Any("err", errs.Loggable(err)))
			} else {
				wages = append(wages, rec)
			}
		}
		if oes.IsIndustryRow(row) {
			result.IndustryRows++
			rec, err := oes.IndustryBreakdown(row, year)
			if err != nil {
				result.Industries.Errored++
				logging.Warn(runCtx, "industry row skipped", slog.Int("row", result.Rows+1), slog.Any("err", errs.Loggable(err)))
			} else {
				industries = append(industries, rec)
			}
		}
	}
	reporter.ImportScanned(result.Sheet, result.Rows)

	writer := s.writer()
	result.Wages.Add(writer.WriteWages(runCtx, SourceSpreadsheet, wages))
	result.Industries.Add(writer.WriteIndustries(runCtx, industries))

	logging.Info(runCtx, "import finished",
		slog.Int("rows", result.Rows),
		slog.Int("wage_rows", result.WageRows),
		slog.Int("industry_rows", result.IndustryRows),
		slog.Int("wages_saved", result.Wages.Saved),
		slog.Int("wages_errored", result.Wages.Errored),
		slog.Int("industries_saved", result.Industries.Saved),
		slog.Int("industries_errored", result.Industries.Errored),
	)
	return result, ctx.Err()
}

func sheetName(source any, fallback string) string {
	if named, ok := source.(interface{ Sheet() string }); ok {
		return named.Sheet()
	}
	return fallback
}
