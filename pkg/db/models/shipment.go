package models

import (
	"time"

	"github.com/logixport/logixport-backend/pkg/enums"
)

// Shipment is a client-owned freight movement record.
type Shipment struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement"`
	Origin      string               `gorm:"column:origin;not null"`
	Destination string               `gorm:"column:destination;not null"`
	Status      enums.ShipmentStatus `gorm:"column:status;type:text;not null"`
	ClientID    uint                 `gorm:"column:client_id;not null;index"`
	Client      *User                `gorm:"foreignKey:ClientID"`
	Details     *string              `gorm:"column:details;type:text"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
