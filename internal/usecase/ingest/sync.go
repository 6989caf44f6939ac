package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/domain/wage"
	"wagesync/internal/errs"
	"wagesync/internal/ports"
)

// Sync walks the selected occupation x geography grid sequentially: one
// paced API call per pair, folded records written as they arrive. Errors
// for a single pair are reported and counted; only context cancellation
// and invalid input end the run early.
func (s *Service) Sync(ctx context.Context, input SyncInput, reporter Reporter) (SyncResult, error) {
	if ctx == nil {
		return SyncResult{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return SyncResult{}, errs.Wrap(err, "check context")
	}
	if s.fetcher == nil {
		return SyncResult{}, errors.New("series fetcher is required")
	}
	reporter = reporterOrNop(reporter)

	selection, err := ResolveSelection(input.Professions, input.AllProfessions, input.States, input.AllStates, s.settings.DefaultProfessions)
	if err != nil {
		return SyncResult{}, err
	}

	startYear := firstPositive(input.StartYear, s.settings.StartYear)
	endYear := firstPositive(input.EndYear, s.settings.EndYear)
	if startYear > 0 && endYear > 0 && startYear > endYear {
		return SyncResult{}, fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}

	limit := rate.Inf
	if s.settings.RequestDelay > 0 {
		limit = rate.Every(s.settings.RequestDelay)
	}
	limiter := rate.NewLimiter(limit, 1)

	runCtx := logging.WithAttrs(ctx, slog.String("component", "ingest.sync"))
	logging.Info(runCtx, "sync started",
		slog.Int("occupations", len(selection.Occupations)),
		slog.Int("geographies", len(selection.Geographies)),
		slog.Int("start_year", startYear),
		slog.Int("end_year", endYear),
	)

	writer := s.writer()
	result := SyncResult{Pairs: selection.Pairs()}
	for _, occupation := range selection.Occupations {
		for _, geography := range selection.Geographies {
			if err := limiter.Wait(ctx); err != nil {
				return result, errs.Wrap(err, "wait for request slot")
			}

			pairCtx := logging.WithAttrs(runCtx,
				slog.String("occupation", occupation),
				slog.String("geography", geography),
			)
			reporter.FetchStarted(occupation, geography)

			records, err := s.fetchPair(pairCtx, occupation, geography, startYear, endYear)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					reporter.FetchFinished(occupation, geography, 0, ctxErr)
					return result, errs.Wrap(ctxErr, "sync interrupted")
				}
				result.FailedPairs++
				reporter.FetchFinished(occupation, geography, 0, err)
				logging.Warn(pairCtx, "series fetch failed", slog.Any("err", errs.Loggable(err)))
				continue
			}

			tally := writer.WriteWages(pairCtx, SourceAPI, records)
			result.Add(tally)
			reporter.FetchFinished(occupation, geography, len(records), nil)
			logging.Debug(pairCtx, "pair synced",
				slog.Int("fetched", tally.Fetched),
				slog.Int("saved", tally.Saved),
				slog.Int("errored", tally.Errored),
			)
		}
	}

	logging.Info(runCtx, "sync finished",
		slog.Int("pairs", result.Pairs),
		slog.Int("failed_pairs", result.FailedPairs),
		slog.Int("fetched", result.Fetched),
		slog.Int("saved", result.Saved),
		slog.Int("errored", result.Errored),
	)
	return result, nil
}

func (s *Service) fetchPair(ctx context.Context, occupation, geography string, startYear, endYear int) ([]wage.Record, error) {
	ids, err := wage.SeriesIDsForOccupation(occupation, geography)
	if err != nil {
		return nil, err
	}
	records, err := s.fetcher.FetchRecords(ctx, ports.SeriesRequest{
		Occupation:   occupation,
		GeographyKey: geography,
		SeriesIDs:    ids,
		StartYear:    startYear,
		EndYear:      endYear,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "fetch %s @ %s", occupation, geography)
	}
	return records, nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
