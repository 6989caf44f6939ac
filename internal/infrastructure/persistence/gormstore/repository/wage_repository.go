package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wagesync/internal/errs"
	"wagesync/internal/infrastructure/persistence/gormstore/model"
	"wagesync/internal/ports"
)

type WageRepository struct {
	db *gorm.DB
}

var _ ports.WageRepository = (*WageRepository)(nil)

func NewWageRepository(db *gorm.DB) *WageRepository {
	return &WageRepository{db: db}
}

func (r *WageRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *WageRepository) FindGeography(ctx context.Context, state string, city string) (ports.Geography, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Geography{}, err
	}

	var row model.Geography
	if err := db.
		Where("state = ? AND city = ?", strings.ToUpper(strings.TrimSpace(state)), strings.TrimSpace(city)).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Geography{}, ports.ErrGeographyNotFound
		}
		return ports.Geography{}, errs.Wrap(err, "query geography")
	}
	return mapGeography(row), nil
}

func (r *WageRepository) CreateGeography(ctx context.Context, input ports.GeographyCreate) (ports.Geography, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Geography{}, err
	}

	state := strings.ToUpper(strings.TrimSpace(input.State))
	if state == "" {
		return ports.Geography{}, errors.New("geography state is required")
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return ports.Geography{}, errors.New("geography slug is required")
	}

	row := model.Geography{
		State:     state,
		StateName: strings.TrimSpace(input.StateName),
		City:      strings.TrimSpace(input.City),
		Slug:      slug,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.Geography{}, errs.Wrapf(err, "create geography %q", slug)
	}
	return mapGeography(row), nil
}

func (r *WageRepository) FindWageStatistic(ctx context.Context, key ports.WageStatisticKey) (ports.WageStatistic, bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.WageStatistic{}, false, err
	}

	row, found, err := findWageStatistic(db, key)
	if err != nil || !found {
		return ports.WageStatistic{}, found, err
	}
	return mapWageStatistic(row), true, nil
}

func (r *WageRepository) SaveWageStatistic(ctx context.Context, input ports.WageStatisticSave) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	key := input.Key
	if strings.TrimSpace(key.OccupationKeyword) == "" {
		return false, errors.New("occupation keyword is required")
	}
	if key.Year <= 0 {
		return false, fmt.Errorf("invalid year %d", key.Year)
	}

	existing, found, err := findWageStatistic(db, key)
	if err != nil {
		return false, err
	}

	if found {
		// Absent figures leave the stored column untouched. The API path
		// never carries the spreadsheet-only columns.
		if err := db.Model(&model.WageStatistic{}).
			Where("id = ?", existing.ID).
			Updates(figureColumns(input.Figures, input.Source)).Error; err != nil {
			return false, errs.Wrapf(err, "update wage statistic %d", existing.ID)
		}
		return false, nil
	}

	row := model.WageStatistic{
		OccupationKeyword: key.OccupationKeyword,
		GeographyID:       key.GeographyID,
		Year:              key.Year,
		Source:            input.Source,
	}
	applyFigures(&row, input.Figures)
	if err := db.Omit(clause.Associations).Create(&row).Error; err != nil {
		return false, errs.Wrap(err, "insert wage statistic")
	}
	return true, nil
}

func (r *WageRepository) UpsertIndustryEmployment(ctx context.Context, input ports.IndustryEmploymentUpsert) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(input.OccupationKeyword) == "" {
		return errors.New("occupation keyword is required")
	}
	if strings.TrimSpace(input.IndustryCode) == "" {
		return errors.New("industry code is required")
	}

	row := model.IndustryEmployment{
		OccupationKeyword: input.OccupationKeyword,
		IndustryCode:      input.IndustryCode,
		Year:              input.Year,
		IndustryTitle:     input.IndustryTitle,
		Employment:        input.Employment,
		AnnualMean:        input.AnnualMean,
		AnnualMedian:      input.AnnualMedian,
		HourlyMean:        input.HourlyMean,
		PctOfTotal:        input.PctOfTotal,
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "occupation_keyword"},
			{Name: "industry_code"},
			{Name: "year"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"industry_title": row.IndustryTitle,
			"employment":     row.Employment,
			"annual_mean":    row.AnnualMean,
			"annual_median":  row.AnnualMedian,
			"hourly_mean":    row.HourlyMean,
			"pct_of_total":   row.PctOfTotal,
			"updated_at":     time.Now().UTC(),
		}),
	}).Create(&row).Error; err != nil {
		return errs.Wrapf(err, "upsert industry employment %s/%s/%d", input.OccupationKeyword, input.IndustryCode, input.Year)
	}
	return nil
}

func (r *WageRepository) ListWageStatistics(ctx context.Context, occupationKeyword string) ([]ports.WageStatistic, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.WageStatistic
	if err := db.
		Preload("Geography").
		Where("occupation_keyword = ?", strings.TrimSpace(occupationKeyword)).
		Order("year desc").
		Order("geography_id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query wage statistics")
	}

	items := make([]ports.WageStatistic, 0, len(rows))
	for _, row := range rows {
		item := mapWageStatistic(row)
		if row.Geography != nil {
			item.GeographySlug = row.Geography.Slug
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *WageRepository) ListIndustryEmployments(ctx context.Context, occupationKeyword string, year int) ([]ports.IndustryEmployment, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.IndustryEmployment{}).Where("occupation_keyword = ?", strings.TrimSpace(occupationKeyword))
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	var rows []model.IndustryEmployment
	if err := query.Order("employment desc").Order("industry_code asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query industry employments")
	}

	items := make([]ports.IndustryEmployment, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.IndustryEmployment{
			ID: row.ID,
			IndustryEmploymentUpsert: ports.IndustryEmploymentUpsert{
				OccupationKeyword: row.OccupationKeyword,
				IndustryCode:      row.IndustryCode,
				IndustryTitle:     row.IndustryTitle,
				Year:              row.Year,
				Employment:        row.Employment,
				AnnualMean:        row.AnnualMean,
				AnnualMedian:      row.AnnualMedian,
				HourlyMean:        row.HourlyMean,
				PctOfTotal:        row.PctOfTotal,
			},
		})
	}
	return items, nil
}

func findWageStatistic(db *gorm.DB, key ports.WageStatisticKey) (model.WageStatistic, bool, error) {
	query := db.Where("occupation_keyword = ? AND year = ?", key.OccupationKeyword, key.Year)
	if key.GeographyID == nil {
		query = query.Where("geography_id IS NULL")
	} else {
		query = query.Where("geography_id = ?", *key.GeographyID)
	}

	var row model.WageStatistic
	if err := query.Order("id asc").Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.WageStatistic{}, false, nil
		}
		return model.WageStatistic{}, false, errs.Wrap(err, "query wage statistic")
	}
	return row, true, nil
}

func figureColumns(f ports.WageFigures, source string) map[string]any {
	cols := map[string]any{"source": source}
	floats := map[string]*float64{
		"hourly_mean":       f.HourlyMean,
		"hourly_p10":        f.HourlyP10,
		"hourly_p25":        f.HourlyP25,
		"hourly_median":     f.HourlyMedian,
		"hourly_p75":        f.HourlyP75,
		"hourly_p90":        f.HourlyP90,
		"annual_mean":       f.AnnualMean,
		"annual_p10":        f.AnnualP10,
		"annual_p25":        f.AnnualP25,
		"annual_median":     f.AnnualMedian,
		"annual_p75":        f.AnnualP75,
		"annual_p90":        f.AnnualP90,
		"jobs_per_1000":     f.JobsPer1000,
		"location_quotient": f.LocationQuotient,
		"employment_rse":    f.EmploymentRSE,
		"wage_rse":          f.WageRSE,
	}
	for col, v := range floats {
		if v != nil {
			cols[col] = *v
		}
	}
	if f.Employment != nil {
		cols["employment"] = *f.Employment
	}
	return cols
}

func applyFigures(row *model.WageStatistic, f ports.WageFigures) {
	row.HourlyMean = f.HourlyMean
	row.HourlyP10 = f.HourlyP10
	row.HourlyP25 = f.HourlyP25
	row.HourlyMedian = f.HourlyMedian
	row.HourlyP75 = f.HourlyP75
	row.HourlyP90 = f.HourlyP90
	row.AnnualMean = f.AnnualMean
	row.AnnualP10 = f.AnnualP10
	row.AnnualP25 = f.AnnualP25
	row.AnnualMedian = f.AnnualMedian
	row.AnnualP75 = f.AnnualP75
	row.AnnualP90 = f.AnnualP90
	row.Employment = f.Employment
	row.JobsPer1000 = f.JobsPer1000
	row.LocationQuotient = f.LocationQuotient
	row.EmploymentRSE = f.EmploymentRSE
	row.WageRSE = f.WageRSE
}

func mapGeography(row model.Geography) ports.Geography {
	return ports.Geography{
		ID:        row.ID,
		State:     row.State,
		StateName: row.StateName,
		City:      row.City,
		Slug:      row.Slug,
	}
}

func mapWageStatistic(row model.WageStatistic) ports.WageStatistic {
	return ports.WageStatistic{
		ID: row.ID,
		Key: ports.WageStatisticKey{
			OccupationKeyword: row.OccupationKeyword,
			GeographyID:       row.GeographyID,
			Year:              row.Year,
		},
		Figures: ports.WageFigures{
			HourlyMean:       row.HourlyMean,
			HourlyP10:        row.HourlyP10,
			HourlyP25:        row.HourlyP25,
			HourlyMedian:     row.HourlyMedian,
			HourlyP75:        row.HourlyP75,
			HourlyP90:        row.HourlyP90,
			AnnualMean:       row.AnnualMean,
			AnnualP10:        row.AnnualP10,
			AnnualP25:        row.AnnualP25,
			AnnualMedian:     row.AnnualMedian,
			AnnualP75:        row.AnnualP75,
			AnnualP90:        row.AnnualP90,
			Employment:       row.Employment,
			JobsPer1000:      row.JobsPer1000,
			LocationQuotient: row.LocationQuotient,
			EmploymentRSE:    row.EmploymentRSE,
			WageRSE:          row.WageRSE,
		},
		Source:    row.Source,
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: row.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
