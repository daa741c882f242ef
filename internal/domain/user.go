package domain

import (
	"time"

	"gorm.io/gorm"
)

// RoleAdmin is the only role in the system. There is a single operator
// account and any valid token grants full dashboard access.
const RoleAdmin = "ADMIN"

// AdminUser represents the single dashboard operator account.
type AdminUser struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string     `gorm:"not null" json:"-"`
	Role           string     `gorm:"default:'ADMIN'" json:"role"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastLogin      *time.Time `json:"last_login"`
}

// TableName specifies the table name for AdminUser
func (AdminUser) TableName() string {
	return "users"
}

// BeforeCreate hook
func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	return nil
}

// BeforeUpdate hook
func (u *AdminUser) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now().UTC()
	return nil
}
