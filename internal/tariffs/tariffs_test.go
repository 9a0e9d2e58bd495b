package tariffs

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/db/models"
)

func setupTariffsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.TariffEntry{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedTariffs(t *testing.T, repo *Repository) {
	t.Helper()
	ctx := context.Background()
	rows := []models.TariffEntry{
		{TariffCode: "0101.21.00", Description: "Pure-bred breeding horses", Version: "2022"},
		{TariffCode: "0101.29.99", Description: "Other live horses", Version: "2022"},
		{TariffCode: "0101.21.00", Description: "Pure-bred breeding horses", Version: "2020"},
		{TariffCode: "8471.30.01", Description: "Portable computers", Version: "2022"},
	}
	for i := range rows {
		if err := repo.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("seed tariff: %v", err)
		}
	}
}

func TestRepositoryListFiltersByVersionAndCode(t *testing.T) {
	db := setupTariffsTestDB(t)
	repo := NewRepository(db)
	seedTariffs(t, repo)
	ctx := context.Background()

	all, err := repo.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(all))
	}

	v2022, err := repo.List(ctx, ListFilter{Version: "2022"})
	if err != nil {
		t.Fatalf("list by version: %v", err)
	}
	if len(v2022) != 3 {
		t.Fatalf("expected 3 rows for 2022, got %d", len(v2022))
	}

	horses, err := repo.List(ctx, ListFilter{Version: "2022", Code: "0101"})
	if err != nil {
		t.Fatalf("list by code: %v", err)
	}
	if len(horses) != 2 {
		t.Fatalf("expected 2 rows for 0101 prefix, got %d", len(horses))
	}
	for _, row := range horses {
		if row.Version != "2022" {
			t.Fatalf("expected only 2022 rows, got %s", row.Version)
		}
	}
}

func TestServiceListMapsDTO(t *testing.T) {
	db := setupTariffsTestDB(t)
	repo := NewRepository(db)
	seedTariffs(t, repo)

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	list, err := svc.List(context.Background(), ListFilter{Code: "8471"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].TariffCode != "8471.30.01" {
		t.Fatalf("unexpected result: %+v", list)
	}
}
