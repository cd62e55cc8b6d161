package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// cart_idのuniqueIndexは「1カート1注文」のDB側バックストップ。
type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	FinalPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"final_price"`
	CartID     int64           `gorm:"not null;uniqueIndex" json:"cart_id"`
	PaymentID  int64           `gorm:"not null;index" json:"payment_id"`
	OrderDate  time.Time       `gorm:"type:date;not null" json:"order_date"`

	Cart    *Cart    `json:"cart,omitempty"`
	Payment *Payment `json:"payment,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
