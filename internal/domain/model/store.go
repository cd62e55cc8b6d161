package model

import "time"

type Store struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	City         string  `gorm:"type:varchar(255);not null" json:"city"`
	ProfileImage *string `gorm:"type:text" json:"profile_image"`

	Products []Product `json:"products,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
