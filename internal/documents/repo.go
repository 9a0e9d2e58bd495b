package documents

import (
	"context"

	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
)

// Repository exposes persistence for categories, documents, and references.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a documents repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateCategory inserts a normative category.
func (r *Repository) CreateCategory(ctx context.Context, name string, description *string) (*models.NormativeCategory, error) {
	category := &models.NormativeCategory{Name: name, Description: description}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.NormativeCategory, error) {
	var list []models.NormativeCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindCategoryByID loads a category by ID.
func (r *Repository) FindCategoryByID(ctx context.Context, id uint) (*models.NormativeCategory, error) {
	var category models.NormativeCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateDocument inserts a normative document.
func (r *Repository) CreateDocument(ctx context.Context, dto CreateDocumentDTO) (*models.NormativeDocument, error) {
	doc := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns documents with their category preloaded, optionally
// filtered by category.
func (r *Repository) ListDocuments(ctx context.Context, categoryID uint) ([]models.NormativeDocument, error) {
	query := r.db.WithContext(ctx).Preload("Category").Order("title ASC")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var list []models.NormativeDocument
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindDocumentByID loads a document with category and outgoing references.
func (r *Repository) FindDocumentByID(ctx context.Context, id uint) (*models.NormativeDocument, error) {
	var doc models.NormativeDocument
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("References").
		Preload("References.TargetDocument").
		First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// CountDocuments returns the total document count plus counts per category.
func (r *Repository) CountDocuments(ctx context.Context) (int64, map[uint]int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.NormativeDocument{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	type row struct {
		CategoryID uint
		Count      int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.NormativeDocument{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return 0, nil, err
	}

	perCategory := make(map[uint]int64, len(rows))
	for _, r := range rows {
		perCategory[r.CategoryID] = r.Count
	}
	return total, perCategory, nil
}

// CreateSupplement inserts a supplement row.
func (r *Repository) CreateSupplement(ctx context.Context, supplement *models.Supplement) (*models.Supplement, error) {
	if err := r.db.WithContext(ctx).Create(supplement).Error; err != nil {
		return nil, err
	}
	return supplement, nil
}

// ListSupplements returns supplements ordered newest publication first.
func (r *Repository) ListSupplements(ctx context.Context) ([]models.Supplement, error) {
	var list []models.Supplement
	if err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreateReference links two documents.
func (r *Repository) CreateReference(ctx context.Context, sourceID, targetID uint, refType enums.ReferenceType, description *string) (*models.DocumentReference, error) {
	ref := &models.DocumentReference{
		SourceDocumentID: sourceID,
		TargetDocumentID: targetID,
		Type:             refType,
		Description:      description,
	}
	if err := r.db.WithContext(ctx).Create(ref).Error; err != nil {
		return nil, err
	}
	return ref, nil
}
