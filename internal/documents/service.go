package documents

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
)

// Service defines the behavior needed by the documents controller.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error)
	List(ctx context.Context, categoryID uint) ([]DocumentDTO, error)
	Get(ctx context.Context, id uint) (*DocumentDTO, error)
	Create(ctx context.Context, req CreateDocumentRequest) (*DocumentDTO, error)
	CreateReference(ctx context.Context, req CreateReferenceRequest) (*ReferenceDTO, error)
	ListSupplements(ctx context.Context) ([]SupplementDTO, error)
	CreateSupplement(ctx context.Context, req CreateSupplementRequest) (*SupplementDTO, error)
}

type repository interface {
	CreateCategory(ctx context.Context, name string, description *string) (*models.NormativeCategory, error)
	ListCategories(ctx context.Context) ([]models.NormativeCategory, error)
	FindCategoryByID(ctx context.Context, id uint) (*models.NormativeCategory, error)
	CreateDocument(ctx context.Context, dto CreateDocumentDTO) (*models.NormativeDocument, error)
	ListDocuments(ctx context.Context, categoryID uint) ([]models.NormativeDocument, error)
	FindDocumentByID(ctx context.Context, id uint) (*models.NormativeDocument, error)
	CreateReference(ctx context.Context, sourceID, targetID uint, refType enums.ReferenceType, description *string) (*models.DocumentReference, error)
	CreateSupplement(ctx context.Context, supplement *models.Supplement) (*models.Supplement, error)
	ListSupplements(ctx context.Context) ([]models.Supplement, error)
}

type service struct {
	repo repository
}

// NewService constructs a documents service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("documents repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	list, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	out := make([]CategoryDTO, 0, len(list))
	for i := range list {
		out = append(out, *categoryFromModel(&list[i]))
	}
	return out, nil
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error) {
	category, err := s.repo.CreateCategory(ctx, req.Name, req.Description)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return categoryFromModel(category), nil
}

func (s *service) List(ctx context.Context, categoryID uint) ([]DocumentDTO, error) {
	list, err := s.repo.ListDocuments(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list documents")
	}
	return FromModels(list), nil
}

func (s *service) Get(ctx context.Context, id uint) (*DocumentDTO, error) {
	doc, err := s.repo.FindDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load document")
	}
	return FromModel(doc), nil
}

func (s *service) Create(ctx context.Context, req CreateDocumentRequest) (*DocumentDTO, error) {
	docType, err := enums.ParseDocumentType(req.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid document type")
	}

	if _, err := s.repo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check category")
	}

	doc, err := s.repo.CreateDocument(ctx, CreateDocumentDTO{
		Title:         req.Title,
		CategoryID:    req.CategoryID,
		Type:          docType,
		PublishedAt:   req.PublishedAt,
		EffectiveFrom: req.EffectiveFrom,
		Content:       req.Content,
		SourceURL:     req.SourceURL,
		ReferenceKey:  req.ReferenceKey,
		Keywords:      req.Keywords,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create document")
	}
	return FromModel(doc), nil
}

func (s *service) CreateReference(ctx context.Context, req CreateReferenceRequest) (*ReferenceDTO, error) {
	var refType enums.ReferenceType
	if req.Type != "" {
		parsed, err := enums.ParseReferenceType(req.Type)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid reference type")
		}
		refType = parsed
	}

	for _, id := range []uint{req.SourceDocumentID, req.TargetDocumentID} {
		if _, err := s.repo.FindDocumentByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown document")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check document")
		}
	}

	ref, err := s.repo.CreateReference(ctx, req.SourceDocumentID, req.TargetDocumentID, refType, req.Description)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create reference")
	}
	dto := referenceFromModel(ref)
	return &dto, nil
}

func (s *service) ListSupplements(ctx context.Context) ([]SupplementDTO, error) {
	list, err := s.repo.ListSupplements(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list supplements")
	}
	out := make([]SupplementDTO, 0, len(list))
	for i := range list {
		out = append(out, supplementFromModel(&list[i]))
	}
	return out, nil
}

func (s *service) CreateSupplement(ctx context.Context, req CreateSupplementRequest) (*SupplementDTO, error) {
	supplement, err := s.repo.CreateSupplement(ctx, req.toModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create supplement")
	}
	dto := supplementFromModel(supplement)
	return &dto, nil
}
