package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jdrosales/playmerch-backend/api/routes"
	cartsvc "github.com/jdrosales/playmerch-backend/internal/cart"
	catalogsvc "github.com/jdrosales/playmerch-backend/internal/catalog"
	checkoutsvc "github.com/jdrosales/playmerch-backend/internal/checkout"
	gamedatasvc "github.com/jdrosales/playmerch-backend/internal/gamedata"
	ordersvc "github.com/jdrosales/playmerch-backend/internal/orders"
	settingssvc "github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/config"
	"github.com/jdrosales/playmerch-backend/pkg/db"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
	"github.com/jdrosales/playmerch-backend/pkg/metrics"
	"github.com/jdrosales/playmerch-backend/pkg/migrate"
	"github.com/jdrosales/playmerch-backend/pkg/redis"
	"github.com/jdrosales/playmerch-backend/pkg/valorantapi"
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

	catalogRepo := catalogsvc.NewRepository(dbClient.DB())
	catalogService, err := catalogsvc.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore, err := cartsvc.NewRedisStore(redisClient, cfg.Cart.TTL())
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartService, err := cartsvc.NewService(cartStore, catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	settingsService := settingssvc.NewService(cfg.Payments)

	orderNumbers, err := checkoutsvc.NewOrderNumberGenerator(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create order number generator", err)
		os.Exit(1)
	}
	checkoutService, err := checkoutsvc.NewService(
		checkoutsvc.NewRepository(dbClient.DB()),
		dbClient,
		cartService,
		orderNumbers,
		settingsService,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	ordersService, err := ordersvc.NewService(ordersvc.NewRepository(dbClient.DB()), settingsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	gameClient := valorantapi.NewClient(valorantapi.WithBaseURL(cfg.GameData.BaseURL))
	gameDataService, err := gamedatasvc.NewService(gameClient, redisClient, cfg.GameData)
	if err != nil {
		logg.Error(context.Background(), "failed to create gamedata service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

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
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			HTTPMetrics: httpMetrics,
			Catalog:     catalogService,
			Cart:        cartService,
			Checkout:    checkoutService,
			Orders:      ordersService,
			Settings:    settingsService,
			GameData:    gameDataService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
