package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"wagesync/internal/infrastructure/persistence/gormstore/model"
	"wagesync/internal/ports"
)

func setupWageRepository(t *testing.T) (*WageRepository, *gorm.DB) {
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
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewWageRepository(db), db
}

func ptr[T any](v T) *T { return &v }

func TestSaveWageStatisticIsIdempotentForNationwide(t *testing.T) {
	repo, db := setupWageRepository(t)
	ctx := context.Background()

	key := ports.WageStatisticKey{OccupationKeyword: "registered-nurse", Year: 2024}
	created, err := repo.SaveWageStatistic(ctx, ports.WageStatisticSave{
		Key:     key,
		Figures: ports.WageFigures{AnnualMedian: ptr(86070.0), Employment: ptr(int64(3175390))},
		Source:  "bls-api",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if !created {
		t.Fatalf("first save expected created=true")
	}

	first, found, err := repo.FindWageStatistic(ctx, key)
	if err != nil || !found {
		t.Fatalf("FindWageStatistic() found=%v err=%v", found, err)
	}

	created, err = repo.SaveWageStatistic(ctx, ports.WageStatisticSave{
		Key:     key,
		Figures: ports.WageFigures{AnnualMedian: ptr(91000.0)},
		Source:  "oes-spreadsheet",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if created {
		t.Fatalf("second save expected created=false")
	}

	var count int64
	if err := db.Model(&model.WageStatistic{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("wage_statistics rows = %d, want 1", count)
	}

	second, found, err := repo.FindWageStatistic(ctx, key)
	if err != nil || !found {
		t.Fatalf("FindWageStatistic() found=%v err=%v", found, err)
	}
	if second.ID != first.ID || second.CreatedAt != first.CreatedAt {
		t.Fatalf("identity changed: %d/%s -> %d/%s", first.ID, first.CreatedAt, second.ID, second.CreatedAt)
	}
	if second.Figures.AnnualMedian == nil || *second.Figures.AnnualMedian != 91000 {
		t.Fatalf("AnnualMedian = %v", second.Figures.AnnualMedian)
	}
	if second.Figures.Employment == nil || *second.Figures.Employment != 3175390 {
		t.Fatalf("Employment = %v, want stored value kept", second.Figures.Employment)
	}
	if second.Source != "oes-spreadsheet" {
		t.Fatalf("Source = %q", second.Source)
	}
}

func TestSaveWageStatisticSeparatesGeographies(t *testing.T) {
	repo, db := setupWageRepository(t)
	ctx := context.Background()

	geo, err := repo.CreateGeography(ctx, ports.GeographyCreate{State: "ca", StateName: "California", Slug: "ca"})
	if err != nil {
		t.Fatalf("CreateGeography() error = %v", err)
	}
	if geo.State != "CA" {
		t.Fatalf("CreateGeography() state = %q", geo.State)
	}

	for _, key := range []ports.WageStatisticKey{
		{OccupationKeyword: "electrician", Year: 2024},
		{OccupationKeyword: "electrician", GeographyID: &geo.ID, Year: 2024},
		{OccupationKeyword: "electrician", GeographyID: &geo.ID, Year: 2023},
	} {
		if _, err := repo.SaveWageStatistic(ctx, ports.WageStatisticSave{
			Key:     key,
			Figures: ports.WageFigures{HourlyMedian: ptr(30.0)},
			Source:  "bls-api",
		}); err != nil {
			t.Fatalf("SaveWageStatistic(%+v) error = %v", key, err)
		}
	}

	var count int64
	if err := db.Model(&model.WageStatistic{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("wage_statistics rows = %d, want 3", count)
	}

	items, err := repo.ListWageStatistics(ctx, "electrician")
	if err != nil {
		t.Fatalf("ListWageStatistics() error = %v", err)
	}
	if len(items) != 3 || items[0].Key.Year != 2024 {
		t.Fatalf("ListWageStatistics() = %+v", items)
	}
}

func TestFindGeography(t *testing.T) {
	repo, _ := setupWageRepository(t)
	ctx := context.Background()

	if _, err := repo.FindGeography(ctx, "TX", ""); !errors.Is(err, ports.ErrGeographyNotFound) {
		t.Fatalf("FindGeography(missing) error = %v", err)
	}

	created, err := repo.CreateGeography(ctx, ports.GeographyCreate{State: "TX", StateName: "Texas", Slug: "tx"})
	if err != nil {
		t.Fatalf("CreateGeography() error = %v", err)
	}

	found, err := repo.FindGeography(ctx, "tx", "")
	if err != nil {
		t.Fatalf("FindGeography() error = %v", err)
	}
	if found.ID != created.ID || found.Slug != "tx" || found.StateName != "Texas" {
		t.Fatalf("FindGeography() = %+v", found)
	}

	if _, err := repo.CreateGeography(ctx, ports.GeographyCreate{State: "TX", StateName: "Texas", Slug: "tx"}); err == nil {
		t.Fatalf("CreateGeography(duplicate) expected error")
	}
}

func TestUpsertIndustryEmployment(t *testing.T) {
	repo, db := setupWageRepository(t)
	ctx := context.Background()

	input := ports.IndustryEmploymentUpsert{
		OccupationKeyword: "registered-nurse",
		IndustryCode:      "622000",
		IndustryTitle:     "Hospitals",
		Year:              2024,
		Employment:        ptr(int64(1800000)),
		PctOfTotal:        ptr(29.7),
	}
	if err := repo.UpsertIndustryEmployment(ctx, input); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	input.Employment = ptr(int64(1823760))
	input.AnnualMedian = ptr(90000.0)
	if err := repo.UpsertIndustryEmployment(ctx, input); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := db.Model(&model.IndustryEmployment{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("industry_employments rows = %d, want 1", count)
	}

	items, err := repo.ListIndustryEmployments(ctx, "registered-nurse", 2024)
	if err != nil {
		t.Fatalf("ListIndustryEmployments() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListIndustryEmployments() len = %d", len(items))
	}
	if items[0].Employment == nil || *items[0].Employment != 1823760 {
		t.Fatalf("Employment = %v", items[0].Employment)
	}
	if items[0].AnnualMedian == nil || *items[0].AnnualMedian != 90000 {
		t.Fatalf("AnnualMedian = %v", items[0].AnnualMedian)
	}
}

func TestSaveWageStatisticValidatesKey(t *testing.T) {
	repo, _ := setupWageRepository(t)
	ctx := context.Background()

	if _, err := repo.SaveWageStatistic(ctx, ports.WageStatisticSave{Key: ports.WageStatisticKey{Year: 2024}}); err == nil {
		t.Fatalf("expected error for empty occupation")
	}
	if _, err := repo.SaveWageStatistic(ctx, ports.WageStatisticSave{Key: ports.WageStatisticKey{OccupationKeyword: "welder"}}); err == nil {
		t.Fatalf("expected error for zero year")
	}
}
