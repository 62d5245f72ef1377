package integration_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	adaptconfig "github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/config"
	adaptmongo "github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/mongo"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/mongo/repository"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/outbox"
	adaptrabbitmq "github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/rabbitmq"
	adaptredis "github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/redis"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/dto"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/service"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient  *mongo.Client
	redisClient  *adaptredis.Client
	broker       *adaptrabbitmq.RabbitMQAdapter
	amqpEndpoint string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7", mongodb.WithReplicaSet("rs0"))
	if err != nil {
		log.Fatalf("mongodb container: %v", err)
	}
	mongoEndpoint, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("mongodb connection string: %v", err)
	}
	mongoClient, err = mongo.Connect(ctx, options.Client().
		ApplyURI(mongoEndpoint).
		SetDirect(true).
		SetConnectTimeout(30*time.Second).
		SetServerSelectionTimeout(30*time.Second))
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("mongodb ping: %v", err)
	}

	// --- Redis ---
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("redis container: %v", err)
	}
	redisEndpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("redis connection string: %v", err)
	}
	redisClient, err = adaptredis.NewConnection(adaptconfig.RedisConfig{URL: redisEndpoint})
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	// --- RabbitMQ ---
	rabbitContainer, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("rabbitmq container: %v", err)
	}
	amqpEndpoint, err = rabbitContainer.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("rabbitmq amqp url: %v", err)
	}
	broker, err = adaptrabbitmq.NewRabbitMQAdapter(adaptconfig.RabbitMQConfig{
		URL:        amqpEndpoint,
		MaxRetries: 2,
		RetryDelay: 100 * time.Millisecond,
		ExchangeConfigs: []adaptconfig.ExchangeConfig{
			{Name: "exchange.stock", Type: "direct", Durable: true, AutoDelete: false},
		},
	})
	if err != nil {
		log.Fatalf("rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = broker.Close()
	_ = redisClient.Close()
	_ = mongoClient.Disconnect(ctx)
	_ = mongoContainer.Terminate(ctx)
	_ = redisContainer.Terminate(ctx)
	_ = rabbitContainer.Terminate(ctx)

	os.Exit(code)
}

func setupConsumer(t *testing.T, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(amqpEndpoint)
	if err != nil {
		t.Fatalf("consumer dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("consumer channel: %v", err)
	}
	t.Cleanup(func() { ch.Close() })

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("queue declare: %v", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, "exchange.stock", false, nil); err != nil {
		t.Fatalf("queue bind: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	return msgs
}

func buildServices(t *testing.T, dbName string) (
	*service.InventoryService,
	*service.ProductService,
	*service.CategoryService,
	*outbox.Handler,
) {
	t.Helper()
	db := mongoClient.Database(dbName)

	outboxRepo := repository.NewOutboxRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	movementRepo := repository.NewMovementRepository(db, outboxRepo)
	txManager := adaptmongo.NewTransactionManager(mongoClient)

	versions := adaptredis.NewVersionProvider(redisClient)
	productService := service.NewProductService(productRepo, versions)
	categoryService := service.NewCategoryService(categoryRepo, productService, versions, txManager)

	idempotencyCache := adaptredis.NewCache[service.IdempotencyEntry[service.MovementResult]](redisClient, dbName+"-idemp")
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 5*time.Minute, 500*time.Millisecond, 10*time.Second)

	inventoryService := service.NewInventoryService(movementRepo, productService, idempotencyService, versions)

	outboxHandler := outbox.NewHandler(outboxRepo, broker, adaptconfig.OutboxConfig{
		Interval:  100 * time.Millisecond,
		BatchSize: 50,
	})

	return inventoryService, productService, categoryService, outboxHandler
}

func TestIntegration_ApplyMovement_FullCycle(t *testing.T) {
	msgs := setupConsumer(t, "stock.movement_applied")

	inventorySvc, productSvc, _, outboxHandler := buildServices(t, "int_full_cycle")
	ctx := context.Background()

	handlerCtx, cancelHandler := context.WithCancel(ctx)
	defer cancelHandler()
	go outboxHandler.Start(handlerCtx)

	product, err := productSvc.CreateProduct(ctx, &dto.CreateProductRequest{
		Name: "Integration Widget", Description: "e2e", Price: 2999, StockQuantity: 50, StockMin: 5,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	result, err := inventorySvc.ApplyMovement(ctx, "", &dto.CreateMovementRequest{
		ProductID: product.ID,
		Kind:      "in",
		Quantity:  3,
		Reason:    "restock",
	})
	if err != nil {
		t.Fatalf("apply movement: %v", err)
	}
	if result.Movement.ID == "" {
		t.Fatal("movement ID should not be empty")
	}
	if result.NewStock != 53 {
		t.Fatalf("expected new stock 53, got %d", result.NewStock)
	}

	productAfter, _ := productSvc.GetByID(ctx, product.ID)
	if productAfter.StockQuantity != 53 {
		t.Fatalf("expected stock 53, got %d", productAfter.StockQuantity)
	}

	select {
	case msg := <-msgs:
		var event domain.StockMovementAppliedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.MovementID != result.Movement.ID {
			t.Fatalf("event movement_id: expected %s, got %s", result.Movement.ID, event.MovementID)
		}
		if event.ProductID != product.ID {
			t.Fatalf("event product_id: expected %s, got %s", product.ID, event.ProductID)
		}
		if event.NewStock != 53 {
			t.Fatalf("event new_stock: expected 53, got %d", event.NewStock)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for stock.movement_applied event")
	}

	history, err := inventorySvc.ListByProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("list movements: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(history))
	}
	if history[0].Kind != domain.MovementIn {
		t.Fatalf("expected kind 'in', got %q", history[0].Kind)
	}
}

func TestIntegration_ApplyMovement_Idempotency(t *testing.T) {
	inventorySvc, productSvc, _, _ := buildServices(t, "int_idempotency")
	ctx := context.Background()

	product, _ := productSvc.CreateProduct(ctx, &dto.CreateProductRequest{
		Name: "Idemp Widget", Description: "test", Price: 1000, StockQuantity: 100, StockMin: 5,
	})

	request := &dto.CreateMovementRequest{
		ProductID: product.ID,
		Kind:      "out",
		Quantity:  2,
		Reason:    "sale",
	}

	result1, err := inventorySvc.ApplyMovement(ctx, "idemp-key-1", request)
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}

	result2, err := inventorySvc.ApplyMovement(ctx, "idemp-key-1", request)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if result2.Movement.ID != result1.Movement.ID {
		t.Fatalf("expected same movement: %s vs %s", result1.Movement.ID, result2.Movement.ID)
	}

	// Stock moved only once
	p, _ := productSvc.GetByID(ctx, product.ID)
	if p.StockQuantity != 98 {
		t.Fatalf("expected stock 98 (single movement), got %d", p.StockQuantity)
	}
	history, _ := inventorySvc.ListByProduct(ctx, product.ID)
	if len(history) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(history))
	}
}

func TestIntegration_ApplyMovement_InsufficientStock(t *testing.T) {
	inventorySvc, productSvc, _, _ := buildServices(t, "int_low_stock")
	ctx := context.Background()

	product, _ := productSvc.CreateProduct(ctx, &dto.CreateProductRequest{
		Name: "Low Stock", Description: "test", Price: 500, StockQuantity: 2, StockMin: 1,
	})

	_, err := inventorySvc.ApplyMovement(ctx, "", &dto.CreateMovementRequest{
		ProductID: product.ID,
		Kind:      "out",
		Quantity:  5,
	})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	unchanged, _ := productSvc.GetByID(ctx, product.ID)
	if unchanged.StockQuantity != 2 {
		t.Fatalf("stock should be unchanged: expected 2, got %d", unchanged.StockQuantity)
	}
	history, _ := inventorySvc.ListByProduct(ctx, product.ID)
	if len(history) != 0 {
		t.Fatalf("expected no movement recorded, got %d", len(history))
	}
}

func TestIntegration_ApplyMovement_Concurrent(t *testing.T) {
	inventorySvc, productSvc, _, _ := buildServices(t, "int_concurrent")
	ctx := context.Background()

	product, _ := productSvc.CreateProduct(ctx, &dto.CreateProductRequest{
		Name: "Contended Widget", Description: "test", Price: 1000, StockQuantity: 10, StockMin: 1,
	})

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := inventorySvc.ApplyMovement(ctx, "", &dto.CreateMovementRequest{
				ProductID: product.ID,
				Kind:      "in",
				Quantity:  5,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent apply: %v", err)
		}
	}

	final, _ := productSvc.GetByID(ctx, product.ID)
	if final.StockQuantity != 25 {
		t.Fatalf("expected stock 25 after 3 concurrent movements, got %d", final.StockQuantity)
	}
	history, _ := inventorySvc.ListByProduct(ctx, product.ID)
	if len(history) != 3 {
		t.Fatalf("expected 3 movements, got %d", len(history))
	}
}

func TestIntegration_CategoryDelete_BlockedByProducts(t *testing.T) {
	_, productSvc, categorySvc, _ := buildServices(t, "int_category_delete")
	ctx := context.Background()

	category, err := categorySvc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Short Lived"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	product, err := productSvc.CreateProduct(ctx, &dto.CreateProductRequest{
		Name: "Categorized Widget", Description: "test", Price: 1000,
		CategoryID: category.ID, StockQuantity: 1, StockMin: 1,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	err = categorySvc.DeleteCategory(ctx, category.ID)
	if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := productSvc.DeleteProduct(ctx, product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if err := categorySvc.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("delete category after products removed: %v", err)
	}
}

func TestIntegration_AdjustmentMovement(t *testing.T) {
	inventorySvc, productSvc, _, _ := buildServices(t, "int_adjustment")
	ctx := context.Background()

	product, _ := productSvc.CreateProduct(ctx, &dto.CreateProductRequest{
		Name: "Audited Widget", Description: "test", Price: 1000, StockQuantity: 12, StockMin: 2,
	})

	result, err := inventorySvc.ApplyMovement(ctx, "", &dto.CreateMovementRequest{
		ProductID: product.ID,
		Kind:      "adjustment",
		Quantity:  -5,
		Reason:    "cycle count",
	})
	if err != nil {
		t.Fatalf("apply adjustment: %v", err)
	}
	if result.NewStock != 7 {
		t.Fatalf("expected new stock 7, got %d", result.NewStock)
	}

	// correcting below zero is rejected
	_, err = inventorySvc.ApplyMovement(ctx, "", &dto.CreateMovementRequest{
		ProductID: product.ID,
		Kind:      "adjustment",
		Quantity:  -20,
	})
	if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
