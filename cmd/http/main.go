package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/config"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/http"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/http/controllers"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/mongo"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/mongo/repository"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/outbox"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/rabbitmq"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/redis"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/logger"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/service"
)

// @title       Hypesoft Inventory API
// @version     1.0
// @description Product, category and stock movement management API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// initialize database and repos
	database := mongoClient.Database(cfg.Mongo.Database)
	productRepository := repository.NewProductRepository(database)
	categoryRepository := repository.NewCategoryRepository(database)
	outboxRepository := repository.NewOutboxRepository(database)
	movementRepository := repository.NewMovementRepository(database, outboxRepository)
	txManager := mongo.NewTransactionManager(mongoClient)

	// caches, versions and rate limiter
	versions := redis.NewVersionProvider(redisClient)
	productListCache := redis.NewCache[[]controllers.ProductResponse](redisClient, "list-cache")
	categoryListCache := redis.NewCache[[]controllers.CategoryResponse](redisClient, "list-cache")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[service.MovementResult]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	productService := service.NewProductService(productRepository, versions)
	categoryService := service.NewCategoryService(categoryRepository, productService, versions, txManager)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 15*time.Minute, 1*time.Second, 10*time.Second)
	inventoryService := service.NewInventoryService(movementRepository, productService, idempotencyService, versions)

	// controllers
	productController := controllers.NewProductController(productService, versions, productListCache)
	categoryController := controllers.NewCategoryController(categoryService, versions, categoryListCache)
	inventoryController := controllers.NewInventoryController(inventoryService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})

	// router
	router := http.NewRouter(healthController, productController, categoryController, inventoryController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
