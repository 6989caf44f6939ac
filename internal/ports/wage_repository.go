package ports

import (
	"context"
	"errors"
)

var ErrGeographyNotFound = errors.New("geography not found")

type Geography struct {
	ID        uint
	State     string
	StateName string
	City      string
	Slug      string
}

type GeographyCreate struct {
	State     string
	StateName string
	City      string
	Slug      string
}

// WageFigures holds every nullable numeric column of a wage statistic.
type WageFigures struct {
	HourlyMean   *float64
	HourlyP10    *float64
	HourlyP25    *float64
	HourlyMedian *float64
	HourlyP75    *float64
	HourlyP90    *float64

	AnnualMean   *float64
	AnnualP10    *float64
	AnnualP25    *float64
	AnnualMedian *float64
	AnnualP75    *float64
	AnnualP90    *float64

	Employment       *int64
	JobsPer1000      *float64
	LocationQuotient *float64
	EmploymentRSE    *float64
	WageRSE          *float64
}

// WageStatisticKey identifies one wage row. GeographyID is nil for the
// nationwide aggregate.
type WageStatisticKey struct {
	OccupationKeyword string
	GeographyID       *uint
	Year              int
}

type WageStatisticSave struct {
	Key     WageStatisticKey
	Figures WageFigures
	Source  string
}

type WageStatistic struct {
	ID  uint
	Key WageStatisticKey
	// GeographySlug is empty for the nationwide row and only filled by
	// listings.
	GeographySlug string
	Figures       WageFigures
	Source        string
	CreatedAt     string
	UpdatedAt     string
}

type IndustryEmploymentUpsert struct {
	OccupationKeyword string
	IndustryCode      string
	IndustryTitle     string
	Year              int

	Employment   *int64
	AnnualMean   *float64
	AnnualMedian *float64
	HourlyMean   *float64
	PctOfTotal   *float64
}

type IndustryEmployment struct {
	ID uint
	IndustryEmploymentUpsert
}

type WageReadRepository interface {
	FindGeography(ctx context.Context, state string, city string) (Geography, error)
	FindWageStatistic(ctx context.Context, key WageStatisticKey) (WageStatistic, bool, error)
	ListWageStatistics(ctx context.Context, occupationKeyword string) ([]WageStatistic, error)
	ListIndustryEmployments(ctx context.Context, occupationKeyword string, year int) ([]IndustryEmployment, error)
}

type WageRepository interface {
	WageReadRepository
	CreateGeography(ctx context.Context, input GeographyCreate) (Geography, error)
	// SaveWageStatistic updates the row matching input.Key in place or
	// inserts a new one. It reports whether a row was created.
	SaveWageStatistic(ctx context.Context, input WageStatisticSave) (bool, error)
	UpsertIndustryEmployment(ctx context.Context, input IndustryEmploymentUpsert) error
}
