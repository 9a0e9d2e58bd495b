package documents

import (
	"time"

	"github.com/lib/pq"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
)

// CategoryDTO is the transport shape for a normative category.
type CategoryDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// DocumentDTO is the transport shape for a normative document.
type DocumentDTO struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	CategoryID    uint           `json:"category_id"`
	Category      *CategoryDTO   `json:"category,omitempty"`
	Type          string         `json:"type"`
	PublishedAt   *time.Time     `json:"published_at,omitempty"`
	EffectiveFrom *time.Time     `json:"effective_from,omitempty"`
	Content       *string        `json:"content,omitempty"`
	SourceURL     *string        `json:"source_url,omitempty"`
	ReferenceKey  *string        `json:"reference_key,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`
	References    []ReferenceDTO `json:"references,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ReferenceDTO describes a directed relation to another document.
type ReferenceDTO struct {
	ID               uint    `json:"id"`
	TargetDocumentID uint    `json:"target_document_id"`
	TargetTitle      string  `json:"target_title,omitempty"`
	Type             string  `json:"type,omitempty"`
	Description      *string `json:"description,omitempty"`
}

// SupplementDTO is the transport shape for ancillary material such as
// circulars and bulletins.
type SupplementDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Kind            string     `json:"kind"`
	ReferenceNumber *string    `json:"reference_number,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	Content         *string    `json:"content,omitempty"`
	SourceURL       *string    `json:"source_url,omitempty"`
	IssuingEntity   *string    `json:"issuing_entity,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateDocumentRequest is the JSON payload for registering a document.
type CreateDocumentRequest struct {
	Title         string     `json:"title" validate:"required"`
	CategoryID    uint       `json:"category_id" validate:"required"`
	Type          string     `json:"type" validate:"required"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	Content       *string    `json:"content,omitempty"`
	SourceURL     *string    `json:"source_url,omitempty"`
	ReferenceKey  *string    `json:"reference_key,omitempty"`
	Keywords      []string   `json:"keywords,omitempty"`
}

// CreateCategoryRequest is the JSON payload for a new category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// CreateSupplementRequest is the JSON payload for publishing a supplement.
type CreateSupplementRequest struct {
	Title           string     `json:"title" validate:"required"`
	Kind            string     `json:"kind" validate:"required"`
	ReferenceNumber *string    `json:"reference_number,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	Content         *string    `json:"content,omitempty"`
	SourceURL       *string    `json:"source_url,omitempty"`
	IssuingEntity   *string    `json:"issuing_entity,omitempty"`
}

// CreateReferenceRequest links one document to another.
type CreateReferenceRequest struct {
	SourceDocumentID uint    `json:"source_document_id" validate:"required"`
	TargetDocumentID uint    `json:"target_document_id" validate:"required"`
	Type             string  `json:"type,omitempty"`
	Description      *string `json:"description,omitempty"`
}

func categoryFromModel(c *models.NormativeCategory) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description}
}

func referenceFromModel(ref *models.DocumentReference) ReferenceDTO {
	dto := ReferenceDTO{
		ID:               ref.ID,
		TargetDocumentID: ref.TargetDocumentID,
		Type:             string(ref.Type),
		Description:      ref.Description,
	}
	if ref.TargetDocument != nil {
		dto.TargetTitle = ref.TargetDocument.Title
	}
	return dto
}

func FromModel(d *models.NormativeDocument) *DocumentDTO {
	if d == nil {
		return nil
	}

	dto := &DocumentDTO{
		ID:            d.ID,
		Title:         d.Title,
		CategoryID:    d.CategoryID,
		Category:      categoryFromModel(d.Category),
		Type:          string(d.Type),
		PublishedAt:   d.PublishedAt,
		EffectiveFrom: d.EffectiveFrom,
		Content:       d.Content,
		SourceURL:     d.SourceURL,
		ReferenceKey:  d.ReferenceKey,
		Keywords:      []string(d.Keywords),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	for i := range d.References {
		dto.References = append(dto.References, referenceFromModel(&d.References[i]))
	}
	return dto
}

func FromModels(list []models.NormativeDocument) []DocumentDTO {
	out := make([]DocumentDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// CreateDocumentDTO holds the validated data the repo persists.
type CreateDocumentDTO struct {
	Title         string
	CategoryID    uint
	Type          enums.DocumentType
	PublishedAt   *time.Time
	EffectiveFrom *time.Time
	Content       *string
	SourceURL     *string
	ReferenceKey  *string
	Keywords      []string
}

func (c CreateDocumentDTO) ToModel() *models.NormativeDocument {
	return &models.NormativeDocument{
		Title:         c.Title,
		CategoryID:    c.CategoryID,
		Type:          c.Type,
		PublishedAt:   c.PublishedAt,
		EffectiveFrom: c.EffectiveFrom,
		Content:       c.Content,
		SourceURL:     c.SourceURL,
		ReferenceKey:  c.ReferenceKey,
		Keywords:      pq.StringArray(c.Keywords),
	}
}

func supplementFromModel(s *models.Supplement) SupplementDTO {
	return SupplementDTO{
		ID:              s.ID,
		Title:           s.Title,
		Kind:            s.Kind,
		ReferenceNumber: s.ReferenceNumber,
		PublishedAt:     s.PublishedAt,
		Content:         s.Content,
		SourceURL:       s.SourceURL,
		IssuingEntity:   s.IssuingEntity,
		CreatedAt:       s.CreatedAt,
	}
}

func (r CreateSupplementRequest) toModel() *models.Supplement {
	return &models.Supplement{
		Title:           r.Title,
		Kind:            r.Kind,
		ReferenceNumber: r.ReferenceNumber,
		PublishedAt:     r.PublishedAt,
		Content:         r.Content,
		SourceURL:       r.SourceURL,
		IssuingEntity:   r.IssuingEntity,
	}
}
