package model

import "time"

type Geography struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	State     string    `gorm:"column:state;type:varchar(2);not null;uniqueIndex:idx_geographies_state_city"`
	StateName string    `gorm:"column:state_name;type:text;not null"`
	City      string    `gorm:"column:city;type:varchar(128);not null;default:'';uniqueIndex:idx_geographies_state_city"`
	Slug      string    `gorm:"column:slug;type:varchar(160);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (Geography) TableName() string {
	return "geographies"
}
