package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentMethod string        `gorm:"type:varchar(100);not null" json:"payment_method"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Order *Order `json:"order,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
