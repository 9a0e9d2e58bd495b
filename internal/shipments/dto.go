package shipments

import (
	"time"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
)

// ShipmentDTO is the transport shape for a shipment.
type ShipmentDTO struct {
	ID          uint      `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	ClientID    uint      `json:"client_id"`
	Details     *string   `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateShipmentRequest is the JSON payload for opening a shipment.
type CreateShipmentRequest struct {
	Origin      string  `json:"origin" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	Status      string  `json:"status,omitempty"`
	ClientID    uint    `json:"client_id" validate:"required"`
	Details     *string `json:"details,omitempty"`
}

// UpdateStatusRequest carries the new lifecycle state.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func FromModel(s *models.Shipment) *ShipmentDTO {
	if s == nil {
		return nil
	}
	return &ShipmentDTO{
		ID:          s.ID,
		Origin:      s.Origin,
		Destination: s.Destination,
		Status:      string(s.Status),
		ClientID:    s.ClientID,
		Details:     s.Details,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromModels(list []models.Shipment) []ShipmentDTO {
	out := make([]ShipmentDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// CreateShipmentDTO holds the validated data the repo persists.
type CreateShipmentDTO struct {
	Origin      string
	Destination string
	Status      enums.ShipmentStatus
	ClientID    uint
	Details     *string
}

func (c CreateShipmentDTO) ToModel() *models.Shipment {
	status := c.Status
	if status == "" {
		status = enums.ShipmentStatusPending
	}
	return &models.Shipment{
		Origin:      c.Origin,
		Destination: c.Destination,
		Status:      status,
		ClientID:    c.ClientID,
		Details:     c.Details,
	}
}
