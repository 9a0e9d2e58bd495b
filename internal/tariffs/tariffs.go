package tariffs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
)

// TariffDTO is the transport shape for one tariff schedule row.
type TariffDTO struct {
	ID            uint       `json:"id"`
	TariffCode    string     `json:"tariff_code"`
	Description   string     `json:"description"`
	Unit          *string    `json:"unit,omitempty"`
	GeneralDuty   *string    `json:"general_duty,omitempty"`
	Version       string     `json:"version"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// ListFilter narrows the tariff listing.
type ListFilter struct {
	Version string
	Code    string
}

func fromModel(e *models.TariffEntry) TariffDTO {
	return TariffDTO{
		ID:            e.ID,
		TariffCode:    e.TariffCode,
		Description:   e.Description,
		Unit:          e.Unit,
		GeneralDuty:   e.GeneralDuty,
		Version:       e.Version,
		EffectiveFrom: e.EffectiveFrom,
		Notes:         e.Notes,
	}
}

// Repository exposes tariff schedule persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a tariffs repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a tariff entry.
func (r *Repository) Create(ctx context.Context, entry *models.TariffEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns tariff rows, optionally narrowed by version and code prefix.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.TariffEntry, error) {
	query := r.db.WithContext(ctx).Order("tariff_code ASC")
	if filter.Version != "" {
		query = query.Where("version = ?", filter.Version)
	}
	if code := strings.TrimSpace(filter.Code); code != "" {
		query = query.Where("tariff_code LIKE ?", code+"%")
	}
	var list []models.TariffEntry
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Service defines the behavior needed by the tariffs controller.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]TariffDTO, error)
}

type repository interface {
	List(ctx context.Context, filter ListFilter) ([]models.TariffEntry, error)
}

type service struct {
	repo repository
}

// NewService constructs a tariffs service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tariffs repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]TariffDTO, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tariffs")
	}
	out := make([]TariffDTO, 0, len(list))
	for i := range list {
		out = append(out, fromModel(&list[i]))
	}
	return out, nil
}
