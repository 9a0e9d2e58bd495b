package incoterms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
)

// IncotermDTO is the transport shape for one commercial term.
type IncotermDTO struct {
	ID                     uint    `json:"id"`
	Code                   string  `json:"code"`
	Name                   string  `json:"name"`
	Description            *string `json:"description,omitempty"`
	SellerResponsibilities *string `json:"seller_responsibilities,omitempty"`
	BuyerResponsibilities  *string `json:"buyer_responsibilities,omitempty"`
	Version                *string `json:"version,omitempty"`
}

func fromModel(i *models.Incoterm) *IncotermDTO {
	if i == nil {
		return nil
	}
	return &IncotermDTO{
		ID:                     i.ID,
		Code:                   i.Code,
		Name:                   i.Name,
		Description:            i.Description,
		SellerResponsibilities: i.SellerResponsibilities,
		BuyerResponsibilities:  i.BuyerResponsibilities,
		Version:                i.Version,
	}
}

// Repository exposes incoterm persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an incoterms repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an incoterm.
func (r *Repository) Create(ctx context.Context, term *models.Incoterm) error {
	return r.db.WithContext(ctx).Create(term).Error
}

// List returns every incoterm ordered by code.
func (r *Repository) List(ctx context.Context) ([]models.Incoterm, error) {
	var list []models.Incoterm
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByCode loads an incoterm by its upper-case code.
func (r *Repository) FindByCode(ctx context.Context, code string) (*models.Incoterm, error) {
	var term models.Incoterm
	if err := r.db.WithContext(ctx).First(&term, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

// Service defines the behavior needed by the incoterms controller.
type Service interface {
	List(ctx context.Context) ([]IncotermDTO, error)
	GetByCode(ctx context.Context, code string) (*IncotermDTO, error)
}

type repository interface {
	List(ctx context.Context) ([]models.Incoterm, error)
	FindByCode(ctx context.Context, code string) (*models.Incoterm, error)
}

type service struct {
	repo repository
}

// NewService constructs an incoterms service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("incoterms repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]IncotermDTO, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list incoterms")
	}
	out := make([]IncotermDTO, 0, len(list))
	for i := range list {
		out = append(out, *fromModel(&list[i]))
	}
	return out, nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*IncotermDTO, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "incoterm code is required")
	}

	term, err := s.repo.FindByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "incoterm not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load incoterm")
	}
	return fromModel(term), nil
}
