package shipments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
)

// Service defines the behavior needed by the shipments controller.
type Service interface {
	Create(ctx context.Context, req CreateShipmentRequest) (*ShipmentDTO, error)
	ListByClient(ctx context.Context, clientID uint) ([]ShipmentDTO, error)
	UpdateStatus(ctx context.Context, shipmentID uint, req UpdateStatusRequest) (*ShipmentDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto CreateShipmentDTO) (*models.Shipment, error)
	FindByID(ctx context.Context, id uint) (*models.Shipment, error)
	ListByClient(ctx context.Context, clientID uint) ([]models.Shipment, error)
	UpdateStatus(ctx context.Context, id uint, status enums.ShipmentStatus) error
}

type service struct {
	repo repository
}

// NewService constructs a shipments service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shipments repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateShipmentRequest) (*ShipmentDTO, error) {
	status := enums.ShipmentStatusPending
	if req.Status != "" {
		parsed, err := enums.ParseShipmentStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipment status")
		}
		status = parsed
	}

	shipment, err := s.repo.Create(ctx, CreateShipmentDTO{
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      status,
		ClientID:    req.ClientID,
		Details:     req.Details,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create shipment")
	}
	return FromModel(shipment), nil
}

func (s *service) ListByClient(ctx context.Context, clientID uint) ([]ShipmentDTO, error) {
	list, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list shipments")
	}
	return FromModels(list), nil
}

func (s *service) UpdateStatus(ctx context.Context, shipmentID uint, req UpdateStatusRequest) (*ShipmentDTO, error) {
	status, err := enums.ParseShipmentStatus(req.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipment status")
	}

	if err := s.repo.UpdateStatus(ctx, shipmentID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update shipment status")
	}

	shipment, err := s.repo.FindByID(ctx, shipmentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload shipment")
	}
	return FromModel(shipment), nil
}
