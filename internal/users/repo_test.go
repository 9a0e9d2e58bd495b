package users

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestRepositoryCreatePersistsActiveFlag(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	inactive := false
	created, err := repo.Create(ctx, CreateUserDTO{Email: "off@example.com", PasswordHash: "x", Role: enums.RoleUser, IsActive: &inactive})
	if err != nil {
		t.Fatalf("create inactive: %v", err)
	}
	if created.IsActive {
		t.Fatal("expected created model to carry is_active=false")
	}

	reloaded, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsActive {
		t.Fatal("expected inactive flag to survive the insert")
	}

	active, err := repo.Create(ctx, CreateUserDTO{Email: "on@example.com", PasswordHash: "x", Role: enums.RoleUser})
	if err != nil {
		t.Fatalf("create default: %v", err)
	}
	if !active.IsActive {
		t.Fatal("expected nil IsActive to default to active")
	}

	total, activeCount, err := repo.CountByActive(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 || activeCount != 1 {
		t.Fatalf("expected 2 total / 1 active, got %d/%d", total, activeCount)
	}
}

func TestRepositorySetActiveUnknownUser(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	if err := repo.SetActive(context.Background(), 9999, false); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}
