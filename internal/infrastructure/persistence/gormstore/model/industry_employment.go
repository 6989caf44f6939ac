package model

import "time"

type IndustryEmployment struct {
	ID                uint   `gorm:"column:id;primaryKey;autoIncrement"`
	OccupationKeyword string `gorm:"column:occupation_keyword;type:varchar(128);not null;uniqueIndex:idx_industry_employments_key,priority:1"`
	IndustryCode      string `gorm:"column:industry_code;type:varchar(16);not null;uniqueIndex:idx_industry_employments_key,priority:2"`
	Year              int    `gorm:"column:year;not null;uniqueIndex:idx_industry_employments_key,priority:3"`
	IndustryTitle     string `gorm:"column:industry_title;type:text;not null"`

	Employment   *int64   `gorm:"column:employment"`
	AnnualMean   *float64 `gorm:"column:annual_mean"`
	AnnualMedian *float64 `gorm:"column:annual_median"`
	HourlyMean   *float64 `gorm:"column:hourly_mean"`
	PctOfTotal   *float64 `gorm:"column:pct_of_total"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (IndustryEmployment) TableName() string {
	return "industry_employments"
}
