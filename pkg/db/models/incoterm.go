package models

import "time"

// Incoterm describes one international commercial term (FOB, CIF, ...).
type Incoterm struct {
	ID                     uint      `gorm:"primaryKey;autoIncrement"`
	Code                   string    `gorm:"column:code;not null;uniqueIndex"`
	Name                   string    `gorm:"column:name;not null"`
	Description            *string   `gorm:"column:description;type:text"`
	SellerResponsibilities *string   `gorm:"column:seller_responsibilities;type:text"`
	BuyerResponsibilities  *string   `gorm:"column:buyer_responsibilities;type:text"`
	Version                *string   `gorm:"column:version"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
