package models

import "time"

type BuahModel struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Price       string    `gorm:"type:varchar(50)"`
	Stock       *int      `gorm:"type:integer"`
	Unit        string    `gorm:"type:varchar(50)"`
	Image       string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	CreatorID   string    `gorm:"type:varchar(36);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (BuahModel) TableName() string {
	return "buah"
}
