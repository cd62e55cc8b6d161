package model

import (
	"time"

	"gorm.io/gorm"
)

// (user_id, product_id) につき1件。重複チェックはusecase側。
type Review struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64   `gorm:"not null;index" json:"user_id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Rating    int     `gorm:"not null" json:"rating"`
	Review    *string `gorm:"type:varchar(1000)" json:"review"`

	User    *User    `json:"user,omitempty"`
	Product *Product `json:"product,omitempty"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
