package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/logixport/logixport-backend/pkg/config"
	"github.com/logixport/logixport-backend/pkg/db"
	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
	"github.com/logixport/logixport-backend/pkg/logger"
	"github.com/logixport/logixport-backend/pkg/security"
)

// seed loads the baseline reference data every deployment needs: the Incoterms
// 2020 catalog, the normative document categories, sample tariff entries, and
// optionally an initial admin account. Re-running is safe; existing rows are
// left untouched.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	adminEmail := flag.String("admin-email", "", "create an admin account with this email")
	adminPassword := flag.String("admin-password", "", "password for the admin account; generated and printed when omitted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	gdb := dbClient.DB()

	if err := seedIncoterms(ctx, gdb); err != nil {
		logg.Error(ctx, "failed to seed incoterms", err)
		os.Exit(1)
	}
	if err := seedCategories(ctx, gdb); err != nil {
		logg.Error(ctx, "failed to seed categories", err)
		os.Exit(1)
	}
	if err := seedTariffs(ctx, gdb); err != nil {
		logg.Error(ctx, "failed to seed tariffs", err)
		os.Exit(1)
	}

	if *adminEmail != "" {
		password := *adminPassword
		generated := false
		if password == "" {
			password, err = security.GenerateTempPassword(16)
			if err != nil {
				logg.Error(ctx, "failed to generate admin password", err)
				os.Exit(1)
			}
			generated = true
		}
		created, err := seedAdmin(ctx, gdb, cfg.Password, *adminEmail, password)
		if err != nil {
			logg.Error(ctx, "failed to seed admin account", err)
			os.Exit(1)
		}
		if created && generated {
			fmt.Printf("generated admin password for %s: %s\n", *adminEmail, password)
		}
	}

	logg.Info(ctx, "seed complete")
}

func seedIncoterms(ctx context.Context, gdb *gorm.DB) error {
	version := "2020"
	catalog := []models.Incoterm{
		{Code: "EXW", Name: "Ex Works"},
		{Code: "FCA", Name: "Free Carrier"},
		{Code: "CPT", Name: "Carriage Paid To"},
		{Code: "CIP", Name: "Carriage and Insurance Paid To"},
		{Code: "DAP", Name: "Delivered at Place"},
		{Code: "DPU", Name: "Delivered at Place Unloaded"},
		{Code: "DDP", Name: "Delivered Duty Paid"},
		{Code: "FAS", Name: "Free Alongside Ship"},
		{Code: "FOB", Name: "Free on Board"},
		{Code: "CFR", Name: "Cost and Freight"},
		{Code: "CIF", Name: "Cost, Insurance and Freight"},
	}
	for i := range catalog {
		catalog[i].Version = &version
		if err := gdb.WithContext(ctx).
			Where("code = ?", catalog[i].Code).
			FirstOrCreate(&catalog[i]).Error; err != nil {
			return fmt.Errorf("incoterm %s: %w", catalog[i].Code, err)
		}
	}
	return nil
}

func seedCategories(ctx context.Context, gdb *gorm.DB) error {
	names := []string{
		"Ley Aduanera",
		"Tratados Internacionales",
		"Reglamentos",
		"Normas Oficiales",
		"Jurisprudencia",
	}
	for _, name := range names {
		category := models.NormativeCategory{Name: name}
		if err := gdb.WithContext(ctx).
			Where("name = ?", name).
			FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("category %s: %w", name, err)
		}
	}
	return nil
}

// seedTariffs inserts a small set of tariff entries spanning three catalog
// versions so the version filter on the tariffs browser has data to show.
func seedTariffs(ctx context.Context, gdb *gorm.DB) error {
	type row struct {
		code, description, unit, duty, version, notes string
		effective                                     time.Time
	}
	rows := []row{
		{
			code:        "0101.21.01",
			description: "Caballos reproductores de raza pura.",
			unit:        "Cabeza",
			duty:        "Ex.",
			version:     "2022",
			notes:       "Fracción arancelaria vigente desde 2022",
			effective:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			code:        "8471.30.01",
			description: "Máquinas automáticas para tratamiento o procesamiento de datos, portátiles, de peso inferior o igual a 10 kg.",
			unit:        "Pieza",
			duty:        "Ex.",
			version:     "2022",
			notes:       "Fracción arancelaria vigente desde 2022",
			effective:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			code:        "8703.22.01",
			description: "De cilindrada superior a 1,000 cm³ pero inferior o igual a 1,500 cm³.",
			unit:        "Pieza",
			duty:        "20",
			version:     "2022",
			notes:       "Fracción arancelaria vigente desde 2022",
			effective:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			code:        "8703.22.01",
			description: "De cilindrada superior a 1,000 cm³ pero inferior o igual a 1,500 cm³.",
			unit:        "Pieza",
			duty:        "20",
			version:     "2020",
			notes:       "Fracción arancelaria versión 2020",
			effective:   time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			code:        "8703.22.01",
			description: "De cilindrada superior a 1,000 cm³ pero inferior o igual a 1,500 cm³.",
			unit:        "Pieza",
			duty:        "30",
			version:     "2007",
			notes:       "Fracción arancelaria versión 2007",
			effective:   time.Date(2007, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, r := range rows {
		unit, duty, notes, effective := r.unit, r.duty, r.notes, r.effective
		entry := models.TariffEntry{
			TariffCode:    r.code,
			Description:   r.description,
			Unit:          &unit,
			GeneralDuty:   &duty,
			Version:       r.version,
			EffectiveFrom: &effective,
			Notes:         &notes,
		}
		if err := gdb.WithContext(ctx).
			Where("tariff_code = ? AND version = ?", r.code, r.version).
			FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("tariff %s (%s): %w", r.code, r.version, err)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, gdb *gorm.DB, passwordCfg config.PasswordConfig, email, password string) (bool, error) {
	var existing models.User
	err := gdb.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := security.HashPassword(password, passwordCfg)
	if err != nil {
		return false, err
	}
	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		Role:         enums.RoleAdmin,
	}
	if err := gdb.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}
