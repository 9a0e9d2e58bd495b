package admin

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/internal/documents"
	"github.com/logixport/logixport-backend/internal/users"
	"github.com/logixport/logixport-backend/pkg/db/models"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
)

// StatsDTO aggregates the dashboard counters.
type StatsDTO struct {
	TotalUsers           int64            `json:"total_users"`
	ActiveUsers          int64            `json:"active_users"`
	TotalDocuments       int64            `json:"total_documents"`
	DocumentsPerCategory map[string]int64 `json:"documents_per_category"`
}

// SetUserActiveRequest flips an account's active flag.
type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Service defines the behavior needed by the admin controller.
type Service interface {
	Stats(ctx context.Context) (*StatsDTO, error)
	ListUsers(ctx context.Context) ([]users.UserDTO, error)
	SetUserActive(ctx context.Context, userID uint, active bool) (*users.UserDTO, error)
	ListDocuments(ctx context.Context) ([]documents.DocumentDTO, error)
}

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	SetActive(ctx context.Context, id uint, active bool) error
	CountByActive(ctx context.Context) (total int64, active int64, err error)
}

type documentRepository interface {
	ListCategories(ctx context.Context) ([]models.NormativeCategory, error)
	ListDocuments(ctx context.Context, categoryID uint) ([]models.NormativeDocument, error)
	CountDocuments(ctx context.Context) (int64, map[uint]int64, error)
}

type service struct {
	users userRepository
	docs  documentRepository
}

// ServiceParams bundles the dependencies for the admin service.
type ServiceParams struct {
	UserRepo     userRepository
	DocumentRepo documentRepository
}

// NewService constructs an admin service.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.DocumentRepo == nil {
		return nil, fmt.Errorf("document repository is required")
	}
	return &service{users: params.UserRepo, docs: params.DocumentRepo}, nil
}

func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	totalUsers, activeUsers, err := s.users.CountByActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count users")
	}

	totalDocs, perCategoryID, err := s.docs.CountDocuments(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count documents")
	}

	categories, err := s.docs.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}

	perCategory := make(map[string]int64, len(categories))
	for i := range categories {
		perCategory[categories[i].Name] = perCategoryID[categories[i].ID]
	}

	return &StatsDTO{
		TotalUsers:           totalUsers,
		ActiveUsers:          activeUsers,
		TotalDocuments:       totalDocs,
		DocumentsPerCategory: perCategory,
	}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]users.UserDTO, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	out := make([]users.UserDTO, 0, len(list))
	for i := range list {
		out = append(out, *users.FromModel(&list[i]))
	}
	return out, nil
}

func (s *service) SetUserActive(ctx context.Context, userID uint, active bool) (*users.UserDTO, error) {
	if err := s.users.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update user state")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload user")
	}
	return users.FromModel(user), nil
}

func (s *service) ListDocuments(ctx context.Context) ([]documents.DocumentDTO, error) {
	list, err := s.docs.ListDocuments(ctx, 0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list documents")
	}
	return documents.FromModels(list), nil
}
