package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/config"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/http/controllers"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	healthController    *controllers.HealthController
	productController   *controllers.ProductController
	categoryController  *controllers.CategoryController
	inventoryController *controllers.InventoryController
	rateLimiter         middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	categoryController *controllers.CategoryController,
	inventoryController *controllers.InventoryController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		productController:   productController,
		categoryController:  categoryController,
		inventoryController: inventoryController,
		rateLimiter:         rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/low-stock", r.productController.GetLowStock)
		v1Group.GET("/products/:id", r.productController.GetByID)
		v1Group.PUT("/products/:id", r.productController.UpdateProduct)
		v1Group.DELETE("/products/:id", r.productController.DeleteProduct)

		v1Group.POST("/categories", r.categoryController.CreateCategory)
		v1Group.GET("/categories", r.categoryController.GetAll)
		v1Group.GET("/categories/:id", r.categoryController.GetByID)
		v1Group.PUT("/categories/:id", r.categoryController.UpdateCategory)
		v1Group.DELETE("/categories/:id", r.categoryController.DeleteCategory)

		v1Group.POST("/inventory", middleware.RateLimit(rl, 30, 1*time.Minute), r.inventoryController.ApplyMovement)
		v1Group.GET("/inventory/:productId", r.inventoryController.GetByProduct)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
