package models

import (
	"time"

	"github.com/logixport/logixport-backend/pkg/enums"
)

// DocumentReference records a directed relation between two normative documents.
type DocumentReference struct {
	ID               uint                `gorm:"primaryKey;autoIncrement"`
	SourceDocumentID uint                `gorm:"column:source_document_id;not null;index"`
	TargetDocumentID uint                `gorm:"column:target_document_id;not null;index"`
	TargetDocument   *NormativeDocument  `gorm:"foreignKey:TargetDocumentID"`
	Type             enums.ReferenceType `gorm:"column:ref_type;type:text"`
	Description      *string             `gorm:"column:description;type:text"`
	CreatedAt        time.Time           `gorm:"column:created_at;autoCreateTime"`
}
