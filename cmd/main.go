package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/food_rescue_network/internal/config"
	"github.com/shenikar/food_rescue_network/internal/feed"
	"github.com/shenikar/food_rescue_network/internal/geo"
	v1 "github.com/shenikar/food_rescue_network/internal/handler/http/v1"
	"github.com/shenikar/food_rescue_network/internal/locate"
	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/repository"
	"github.com/shenikar/food_rescue_network/internal/scheduler"
	"github.com/shenikar/food_rescue_network/internal/service"
	"github.com/shenikar/food_rescue_network/internal/store"
	"github.com/shenikar/food_rescue_network/internal/webhook"
	"github.com/shenikar/food_rescue_network/pkg/logger"
	"github.com/shenikar/food_rescue_network/pkg/postgres"
	redisclient "github.com/shenikar/food_rescue_network/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/food_rescue_network/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Food Rescue Network API
// @version 1.0
// @description Coordination board connecting food donors with relief organizations.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL (архив событий жизненного цикла)
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента (очередь уведомлений организаций)
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB,
		cfg.ConnectMaxAttempts, cfg.ConnectBaseDelay)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя событий и воркера доставки вебхуков
	publisher := webhook.NewRedisPublisher(redisClient)
	worker := webhook.NewWorker(redisClient, log, cfg)
	worker.Start(ctx)

	// Хранилище записей в памяти - единственный источник истины
	listingStore := store.NewListingStore()
	if cfg.SeedDemo {
		store.SeedDemoData(listingStore, time.Now())
		log.Info("Demo donations seeded")
	}
	eventArchive := repository.NewEventArchive(dbpool)

	// Геокодер-заглушка в пределах зоны покрытия
	bounds := geo.Bounds{
		MinLat: cfg.GeoMinLat,
		MaxLat: cfg.GeoMaxLat,
		MinLng: cfg.GeoMinLng,
		MaxLng: cfg.GeoMaxLng,
	}
	geocoder := geo.NewRandomGeocoder(bounds, time.Now().UnixNano())

	// Локатор по IP; при пустом пути к базе работает в деградированном режиме
	fallback := geo.Coordinates{Latitude: cfg.DefaultLat, Longitude: cfg.DefaultLng}
	locator, err := locate.New(cfg.GeoIPDBPath, fallback, log)
	if err != nil {
		log.Fatalf("Failed to open GeoIP database: %v", err)
	}
	defer locator.Close()

	// Лента событий и планировщик отложенных переходов
	liveFeed := feed.New(cfg.FeedCapacity)
	transitions := scheduler.New(log)
	defer transitions.Stop()

	// Инициализация сервисов
	statsAggregator := service.NewStatsAggregator()
	routeService := service.NewRouteService(listingStore, log)
	donationService := service.NewDonationService(listingStore, geocoder, statsAggregator, liveFeed,
		transitions, publisher, eventArchive, routeService, log, cfg)
	mapService := service.NewMapService(listingStore, log)

	// Симулятор ленты для демонстрационных стендов
	if cfg.FeedSimulate {
		simulator := feed.NewSimulator(liveFeed, func() []*models.Donation {
			return listingStore.ListDonations(models.StatusAvailable)
		}, log)
		simulator.Start(ctx)
		log.Info("Live feed simulator started")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(donationService, routeService, mapService, locator, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
