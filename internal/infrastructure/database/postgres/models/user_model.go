package models

import "time"

// UserModel represents the database model for User. Address and operating
// hours are flattened into columns; a null OpenTime means no hours were set.
type UserModel struct {
	ID             string    `gorm:"type:varchar(36);primaryKey"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(20)"`
	Country        string    `gorm:"type:varchar(100)"`
	City           string    `gorm:"type:varchar(100)"`
	AddressDetail  string    `gorm:"type:text"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user';index"`
	ProfileImage   *string   `gorm:"type:text"`
	Description    *string   `gorm:"type:text"`
	OpenTime       *string   `gorm:"type:varchar(20)"`
	CloseTime      *string   `gorm:"type:varchar(20)"`
	StartDay       *string   `gorm:"type:varchar(20)"`
	EndDay         *string   `gorm:"type:varchar(20)"`
	ResetNonce     *string   `gorm:"type:varchar(64)"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
