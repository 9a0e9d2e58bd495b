package models

import "time"

// Supplement covers ancillary material: circulars, bulletins, case law notes.
type Supplement struct {
	ID              uint       `gorm:"primaryKey;autoIncrement"`
	Title           string     `gorm:"column:title;not null"`
	Kind            string     `gorm:"column:kind;not null"`
	ReferenceNumber *string    `gorm:"column:reference_number;index"`
	PublishedAt     *time.Time `gorm:"column:published_at"`
	Content         *string    `gorm:"column:content;type:text"`
	SourceURL       *string    `gorm:"column:source_url"`
	IssuingEntity   *string    `gorm:"column:issuing_entity"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
