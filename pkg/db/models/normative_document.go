package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/logixport/logixport-backend/pkg/enums"
)

// NormativeDocument is a law, treaty, regulation, or similar source text.
type NormativeDocument struct {
	ID            uint               `gorm:"primaryKey;autoIncrement"`
	Title         string             `gorm:"column:title;not null"`
	CategoryID    uint               `gorm:"column:category_id;not null;index"`
	Category      *NormativeCategory `gorm:"foreignKey:CategoryID"`
	Type          enums.DocumentType `gorm:"column:doc_type;type:text;not null"`
	PublishedAt   *time.Time         `gorm:"column:published_at"`
	EffectiveFrom *time.Time         `gorm:"column:effective_from"`
	Content       *string            `gorm:"column:content;type:text"`
	SourceURL     *string            `gorm:"column:source_url"`
	ReferenceKey  *string            `gorm:"column:reference_key;index"`
	Keywords      pq.StringArray     `gorm:"column:keywords;type:text"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`

	References []DocumentReference `gorm:"foreignKey:SourceDocumentID"`
}
