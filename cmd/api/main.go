package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/logixport/logixport-backend/api/routes"
	"github.com/logixport/logixport-backend/api/web"
	"github.com/logixport/logixport-backend/internal/admin"
	"github.com/logixport/logixport-backend/internal/auth"
	"github.com/logixport/logixport-backend/internal/documents"
	"github.com/logixport/logixport-backend/internal/incoterms"
	"github.com/logixport/logixport-backend/internal/shipments"
	"github.com/logixport/logixport-backend/internal/tariffs"
	"github.com/logixport/logixport-backend/internal/users"
	"github.com/logixport/logixport-backend/pkg/config"
	"github.com/logixport/logixport-backend/pkg/db"
	"github.com/logixport/logixport-backend/pkg/logger"
	"github.com/logixport/logixport-backend/pkg/metrics"
	"github.com/logixport/logixport-backend/pkg/migrate"
	"github.com/logixport/logixport-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	userRepo := users.NewRepository(dbClient.DB())
	documentRepo := documents.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	shipmentService, err := shipments.NewService(shipments.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create shipment service", err)
		os.Exit(1)
	}

	documentService, err := documents.NewService(documentRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create document service", err)
		os.Exit(1)
	}

	tariffService, err := tariffs.NewService(tariffs.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create tariff service", err)
		os.Exit(1)
	}

	incotermService, err := incoterms.NewService(incoterms.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create incoterm service", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(admin.ServiceParams{
		UserRepo:     userRepo,
		DocumentRepo: documentRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	renderer, err := web.NewRenderer(logg)
	if err != nil {
		logg.Error(context.Background(), "failed to parse page templates", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Cfg:             cfg,
			Logg:            logg,
			DB:              dbClient,
			Redis:           redisClient,
			Users:           userRepo,
			AuthService:     authService,
			RegisterService: registerService,
			Shipments:       shipmentService,
			Documents:       documentService,
			Tariffs:         tariffService,
			Incoterms:       incotermService,
			Admin:           adminService,
			Renderer:        renderer,
			Registry:        registry,
			HTTPMetrics:     metrics.NewHTTPMetrics(registry),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
