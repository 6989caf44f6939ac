package model

import "time"

// WageStatistic is unique on (occupation_keyword, geography_id, year). The
// index is not declared unique because geography_id is NULL for the
// nationwide row and NULLs never collide in a unique index.
type WageStatistic struct {
	ID                uint       `gorm:"column:id;primaryKey;autoIncrement"`
	OccupationKeyword string     `gorm:"column:occupation_keyword;type:varchar(128);not null;index:idx_wage_statistics_key,priority:1"`
	GeographyID       *uint      `gorm:"column:geography_id;index:idx_wage_statistics_key,priority:2"`
	Geography         *Geography `gorm:"foreignKey:GeographyID;constraint:OnDelete:RESTRICT"`
	Year              int        `gorm:"column:year;not null;index:idx_wage_statistics_key,priority:3"`

	HourlyMean   *float64 `gorm:"column:hourly_mean"`
	HourlyP10    *float64 `gorm:"column:hourly_p10"`
	HourlyP25    *float64 `gorm:"column:hourly_p25"`
	HourlyMedian *float64 `gorm:"column:hourly_median"`
	HourlyP75    *float64 `gorm:"column:hourly_p75"`
	HourlyP90    *float64 `gorm:"column:hourly_p90"`

	AnnualMean   *float64 `gorm:"column:annual_mean"`
	AnnualP10    *float64 `gorm:"column:annual_p10"`
	AnnualP25    *float64 `gorm:"column:annual_p25"`
	AnnualMedian *float64 `gorm:"column:annual_median"`
	AnnualP75    *float64 `gorm:"column:annual_p75"`
	AnnualP90    *float64 `gorm:"column:annual_p90"`

	Employment       *int64   `gorm:"column:employment"`
	JobsPer1000      *float64 `gorm:"column:jobs_per_1000"`
	LocationQuotient *float64 `gorm:"column:location_quotient"`
	EmploymentRSE    *float64 `gorm:"column:employment_rse"`
	WageRSE          *float64 `gorm:"column:wage_rse"`

	Source    string    `gorm:"column:source;type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (WageStatistic) TableName() string {
	return "wage_statistics"
}
