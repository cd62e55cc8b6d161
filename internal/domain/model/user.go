package model

import "time"

type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string  `gorm:"type:varchar(255);not null" json:"-"`
	Address      *string `gorm:"type:text" json:"address"`
	ProfileImage *string `gorm:"type:text" json:"profile_image"`

	Roles   []Role   `gorm:"many2many:role_user" json:"roles,omitempty"`
	Carts   []Cart   `gorm:"constraint:OnDelete:CASCADE" json:"carts,omitempty"`
	Reviews []Review `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// roleNamesのいずれかを持っていればtrue
func (u *User) HasAnyRole(roleNames ...string) bool {
	for _, r := range u.Roles {
		for _, name := range roleNames {
			if r.Name == name {
				return true
			}
		}
	}
	return false
}
