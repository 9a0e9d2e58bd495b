package incoterms

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
)

func setupIncotermsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Incoterm{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestServiceGetByCodeNormalizesInput(t *testing.T) {
	db := setupIncotermsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Incoterm{Code: "FOB", Name: "Free On Board"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	term, err := svc.GetByCode(ctx, " fob ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if term.Code != "FOB" || term.Name != "Free On Board" {
		t.Fatalf("unexpected term: %+v", term)
	}
}

func TestServiceGetByCodeUnknown(t *testing.T) {
	db := setupIncotermsTestDB(t)
	svc, err := NewService(NewRepository(db))
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.GetByCode(context.Background(), "XYZ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = svc.GetByCode(context.Background(), "  ")
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceListOrdersByCode(t *testing.T) {
	db := setupIncotermsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for _, code := range []string{"FOB", "CIF", "EXW"} {
		if err := repo.Create(ctx, &models.Incoterm{Code: code, Name: code}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(list))
	}
	if list[0].Code != "CIF" || list[2].Code != "FOB" {
		t.Fatalf("expected code ordering, got %+v", list)
	}
}
