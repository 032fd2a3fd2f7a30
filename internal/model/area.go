package model

import "time"

// Area is an operational area (warehouse section, floor, site).
type Area struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Code        string    `gorm:"type:varchar(20);uniqueIndex" json:"code"`
	AreaCode    int       `gorm:"not null;uniqueIndex" json:"area_code"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Area) TableName() string { return "areas" }
