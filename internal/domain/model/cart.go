package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// total_priceは作成/更新時点のproduct.price * quantityのスナップショット。
// 商品価格が後から変わっても追従しない。
type Cart struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_price"`
	ProductID  int64           `gorm:"not null;index" json:"product_id"`
	UserID     int64           `gorm:"not null;index" json:"user_id"`

	Product *Product `json:"product,omitempty"`
	User    *User    `json:"user,omitempty"`
	Order   *Order   `json:"order,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
