package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	ThumbnailImage *string         `gorm:"type:text" json:"thumbnail_image"`
	Stock          int64           `gorm:"not null" json:"stock"`
	Status         ProductStatus   `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Description    *string         `gorm:"type:text" json:"description"`
	Price          decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	StoreID        int64           `gorm:"not null;index" json:"store_id"`
	CategoryID     int64           `gorm:"not null;index" json:"category_id"`

	Store         *Store         `json:"store,omitempty"`
	Category      *Category      `json:"category,omitempty"`
	Reviews       []Review       `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	ProductImages []ProductImage `gorm:"constraint:OnDelete:CASCADE" json:"product_images,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
