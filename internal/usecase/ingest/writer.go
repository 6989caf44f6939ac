package ingest

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/domain/oes"
	"wagesync/internal/domain/wage"
	"wagesync/internal/errs"
	"wagesync/internal/ports"
)

// Writer upserts normalized records one transaction at a time. A failing
// record is logged and counted; the rest of the batch still runs.
type Writer struct {
	repo ports.WageRepository
	uow  ports.UnitOfWork
}

func NewWriter(repo ports.WageRepository, uow ports.UnitOfWork) *Writer {
	return &Writer{repo: repo, uow: uow}
}

func (w *Writer) WriteWages(ctx context.Context, source string, records []wage.Record) Tally {
	tally := Tally{Fetched: len(records)}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			tally.Errored += tally.Fetched - tally.Saved - tally.Errored
			return tally
		}

		recCtx := logging.WithAttrs(ctx,
			slog.String("occupation", rec.Occupation),
			slog.String("geography", rec.GeographyKey),
			slog.Int("year", rec.Year),
		)
		if err := w.writeWage(recCtx, source, rec); err != nil {
			tally.Errored++
			logging.Error(recCtx, "wage record write failed", slog.Any("err", errs.Loggable(err)))
			continue
		}
		tally.Saved++
	}
	return tally
}

func (w *Writer) writeWage(ctx context.Context, source string, rec wage.Record) error {
	if w.repo == nil || w.uow == nil {
		return errors.New("wage repository and unit of work are required")
	}
	if _, err := wage.LookupOccupation(rec.Occupation); err != nil {
		return err
	}
	area, err := wage.LookupGeography(rec.GeographyKey)
	if err != nil {
		return err
	}

	return w.uow.WithTx(ctx, func(txCtx context.Context) error {
		var geographyID *uint
		if region, ok := area.Geography.(wage.Regional); ok {
			geo, err := w.ensureGeography(txCtx, area.Key, region)
			if err != nil {
				return err
			}
			id := geo.ID
			geographyID = &id
		}

		created, err := w.repo.SaveWageStatistic(txCtx, ports.WageStatisticSave{
			Key: ports.WageStatisticKey{
				OccupationKeyword: rec.Occupation,
				GeographyID:       geographyID,
				Year:              rec.Year,
			},
			Figures: figuresFromRecord(rec),
			Source:  source,
		})
		if err != nil {
			return errs.Wrap(err, "save wage statistic")
		}
		logging.Debug(txCtx, "wage record saved", slog.Bool("created", created))
		return nil
	})
}

func (w *Writer) ensureGeography(ctx context.Context, key string, region wage.Regional) (ports.Geography, error) {
	geo, err := w.repo.FindGeography(ctx, region.State, region.City)
	if err == nil {
		return geo, nil
	}
	if !errors.Is(err, ports.ErrGeographyNotFound) {
		return ports.Geography{}, errs.Wrap(err, "find geography")
	}

	geo, err = w.repo.CreateGeography(ctx, ports.GeographyCreate{
		State:     region.State,
		StateName: region.StateName,
		City:      region.City,
		Slug:      strings.ToLower(key),
	})
	if err != nil {
		return ports.Geography{}, errs.Wrap(err, "create geography")
	}
	logging.Info(ctx, "geography created", slog.String("slug", geo.Slug))
	return geo, nil
}

func (w *Writer) WriteIndustries(ctx context.Context, records []oes.IndustryRecord) Tally {
	tally := Tally{Fetched: len(records)}
	if w.repo == nil || w.uow == nil {
		logging.Error(ctx, "industry write skipped", slog.String("reason", "wage repository and unit of work are required"))
		tally.Errored = len(records)
		return tally
	}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			tally.Errored += tally.Fetched - tally.Saved - tally.Errored
			return tally
		}

		recCtx := logging.WithAttrs(ctx,
			slog.String("occupation", rec.Occupation),
			slog.String("industry", rec.IndustryCode),
			slog.Int("year", rec.Year),
		)
		err := w.uow.WithTx(recCtx, func(txCtx context.Context) error {
			return w.repo.UpsertIndustryEmployment(txCtx, ports.IndustryEmploymentUpsert{
				OccupationKeyword: rec.Occupation,
				IndustryCode:      rec.IndustryCode,
				IndustryTitle:     rec.IndustryTitle,
				Year:              rec.Year,
				Employment:        rec.Employment,
				AnnualMean:        rec.AnnualMean,
				AnnualMedian:      rec.AnnualMedian,
				HourlyMean:        rec.HourlyMean,
				PctOfTotal:        rec.PctOfTotal,
			})
		})
		if err != nil {
			tally.Errored++
			logging.Error(recCtx, "industry record write failed", slog.Any("err", errs.Loggable(err)))
			continue
		}
		tally.Saved++
	}
	return tally
}

func figuresFromRecord(rec wage.Record) ports.WageFigures {
	return ports.WageFigures{
		HourlyMean:   rec.HourlyMean,
		HourlyP10:    rec.HourlyP10,
		HourlyP25:    rec.HourlyP25,
		HourlyMedian: rec.HourlyMedian,
		HourlyP75:    rec.HourlyP75,
		HourlyP90:    rec.HourlyP90,

		AnnualMean:   rec.AnnualMean,
		AnnualP10:    rec.AnnualP10,
		AnnualP25:    rec.AnnualP25,
		AnnualMedian: rec.AnnualMedian,
		AnnualP75:    rec.AnnualP75,
		AnnualP90:    rec.AnnualP90,

		Employment:       rec.Employment,
		JobsPer1000:      rec.JobsPer1000,
		LocationQuotient: rec.LocationQuotient,
		EmploymentRSE:    rec.EmploymentRSE,
		WageRSE:          rec.WageRSE,
	}
}
