package models

import "time"

// NormativeCategory groups normative documents (customs law, treaties, etc.).
type NormativeCategory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null;uniqueIndex"`
	Description *string   `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Documents []NormativeDocument `gorm:"foreignKey:CategoryID"`
}
