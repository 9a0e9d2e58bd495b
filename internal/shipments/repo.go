package shipments

import (
	"context"

	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
)

// Repository exposes shipment persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a shipments repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new shipment and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateShipmentDTO) (*models.Shipment, error) {
	shipment := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(shipment).Error; err != nil {
		return nil, err
	}
	return shipment, nil
}

// FindByID loads a shipment by its numeric ID.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.WithContext(ctx).First(&shipment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shipment, nil
}

// ListByClient returns the client's shipments, newest first.
func (r *Repository) ListByClient(ctx context.Context, clientID uint) ([]models.Shipment, error) {
	var list []models.Shipment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus overwrites the shipment's status. Concurrent writers race and
// the last commit wins.
func (r *Repository) UpdateStatus(ctx context.Context, id uint, status enums.ShipmentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Shipment{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
