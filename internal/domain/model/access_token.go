package model

import (
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// bearer tokenのDB側レコード。logout/refreshで全削除して失効させる。
type AccessToken struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	TokenHash string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// DBにはjtiの平文を置かない
func HashAccessTokenID(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
