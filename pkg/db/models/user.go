package models

import (
	"time"

	"github.com/logixport/logixport-backend/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID                  uint                  `gorm:"primaryKey;autoIncrement"`
	Email               string                `gorm:"type:text;not null;uniqueIndex"`
	Username            *string               `gorm:"column:username;uniqueIndex"`
	PasswordHash        string                `gorm:"column:password_hash;not null"`
	IsActive            bool                  `gorm:"column:is_active;not null"`
	Role                enums.Role            `gorm:"column:role;type:text;not null;default:user"`
	Company             *string               `gorm:"column:company"`
	Phone               *string               `gorm:"column:phone"`
	Avatar              *string               `gorm:"column:avatar"`
	MembershipActive    bool                  `gorm:"column:membership_active;not null;default:false"`
	MembershipPlan      *enums.MembershipPlan `gorm:"column:membership_plan;type:text"`
	MembershipExpiresAt *time.Time            `gorm:"column:membership_expires_at"`
	LastLoginAt         *time.Time            `gorm:"column:last_login_at"`
	LastLoginIP         *string               `gorm:"column:last_login_ip"`
	CreatedAt           time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
