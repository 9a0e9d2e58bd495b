package admin

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/internal/documents"
	"github.com/logixport/logixport-backend/internal/users"
	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
)

func setupAdminTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.NormativeCategory{}, &models.NormativeDocument{}, &models.DocumentReference{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func buildAdminService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:     users.NewRepository(db),
		DocumentRepo: documents.NewRepository(db),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestServiceStats(t *testing.T) {
	db := setupAdminTestDB(t)
	ctx := context.Background()

	userRepo := users.NewRepository(db)
	active := true
	inactive := false
	if _, err := userRepo.Create(ctx, users.CreateUserDTO{Email: "a@example.com", PasswordHash: "x", IsActive: &active}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := userRepo.Create(ctx, users.CreateUserDTO{Email: "b@example.com", PasswordHash: "x", IsActive: &inactive}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	docRepo := documents.NewRepository(db)
	category, err := docRepo.CreateCategory(ctx, "Customs Law", nil)
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := docRepo.CreateDocument(ctx, documents.CreateDocumentDTO{
			Title:      fmt.Sprintf("Law %d", i),
			CategoryID: category.ID,
			Type:       enums.DocumentTypeLaw,
		}); err != nil {
			t.Fatalf("seed document: %v", err)
		}
	}

	stats, err := buildAdminService(t, db).Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 2 || stats.ActiveUsers != 1 {
		t.Fatalf("unexpected user counts: %+v", stats)
	}
	if stats.TotalDocuments != 2 || stats.DocumentsPerCategory["Customs Law"] != 2 {
		t.Fatalf("unexpected document counts: %+v", stats)
	}
}

func TestServiceSetUserActive(t *testing.T) {
	db := setupAdminTestDB(t)
	ctx := context.Background()

	userRepo := users.NewRepository(db)
	user, err := userRepo.Create(ctx, users.CreateUserDTO{Email: "a@example.com", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := buildAdminService(t, db)

	dto, err := svc.SetUserActive(ctx, user.ID, false)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if dto.IsActive {
		t.Fatal("expected user deactivated")
	}

	dto, err = svc.SetUserActive(ctx, user.ID, true)
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if !dto.IsActive {
		t.Fatal("expected user reactivated")
	}
}

func TestServiceSetUserActiveUnknownUser(t *testing.T) {
	db := setupAdminTestDB(t)
	svc := buildAdminService(t, db)

	_, err := svc.SetUserActive(context.Background(), 404, false)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceListUsersOmitsCredentials(t *testing.T) {
	db := setupAdminTestDB(t)
	ctx := context.Background()

	userRepo := users.NewRepository(db)
	if _, err := userRepo.Create(ctx, users.CreateUserDTO{Email: "a@example.com", PasswordHash: "hash", Role: enums.RoleAdmin}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	list, err := buildAdminService(t, db).ListUsers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 user, got %d", len(list))
	}
	if list[0].Role != "admin" {
		t.Fatalf("expected rol admin, got %s", list[0].Role)
	}
}
