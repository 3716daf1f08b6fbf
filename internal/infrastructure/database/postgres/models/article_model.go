package models

import "time"

type ArticleModel struct {
	DocID     string     `gorm:"type:varchar(36);primaryKey"`
	Number    int        `gorm:"not null;uniqueIndex"`
	Title     string     `gorm:"type:varchar(255)"`
	Content   string     `gorm:"type:text"`
	Author    string     `gorm:"type:varchar(255)"`
	Photo     string     `gorm:"type:text"`
	CreatedAt *time.Time `gorm:"autoCreateTime:false"`
}

func (ArticleModel) TableName() string {
	return "artikels"
}
