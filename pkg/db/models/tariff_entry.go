package models

import "time"

// TariffEntry is one row of the customs tariff schedule, current or historical.
type TariffEntry struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"`
	TariffCode    string     `gorm:"column:tariff_code;not null;index"`
	Description   string     `gorm:"column:description;type:text;not null"`
	Unit          *string    `gorm:"column:unit"`
	GeneralDuty   *string    `gorm:"column:general_duty"`
	Version       string     `gorm:"column:version;not null;index"`
	EffectiveFrom *time.Time `gorm:"column:effective_from"`
	Notes         *string    `gorm:"column:notes;type:text"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
