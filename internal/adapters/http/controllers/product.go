package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/http/handlers"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/dto"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/logger"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/service"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
	"github.com/gin-gonic/gin"
)

const listCacheTTL = 30 * time.Second

type ProductController struct {
	productService *service.ProductService
	versions       port.CacheVersionPort
	listCache      port.CachePort[[]ProductResponse]
}

type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	SKU           string    `json:"sku,omitempty"`
	Barcode       string    `json:"barcode,omitempty"`
	CategoryID    string    `json:"category_id,omitempty"`
	Images        []string  `json:"images"`
	StockQuantity int       `json:"stock_quantity"`
	StockMin      int       `json:"stock_min"`
	Status        string    `json:"status"`
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            string(product.ID),
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Price:         int(product.Price),
		SKU:           product.SKU,
		Barcode:       product.Barcode,
		CategoryID:    string(product.CategoryID),
		Images:        product.Images,
		StockQuantity: product.StockQuantity,
		StockMin:      product.StockMin,
		Status:        string(product.Status),
		LowStock:      product.IsLowStock(),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func NewProductController(
	productService *service.ProductService,
	versions port.CacheVersionPort,
	listCache port.CachePort[[]ProductResponse],
) *ProductController {
	return &ProductController{
		productService: productService,
		versions:       versions,
		listCache:      listCache,
	}
}

func parsePage(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// listCacheKey salts the key with the scope's current version, so a write to
// any product invalidates every cached page without deleting keys.
func (pc *ProductController) listCacheKey(c *gin.Context, scope string, page, pageSize int) string {
	version, err := pc.versions.GetVersion(c.Request.Context(), scope)
	if err != nil {
		logger.Warn(c.Request.Context(), "cache: version lookup failed", map[string]any{"scope": scope})
		return ""
	}
	return fmt.Sprintf("%s:v%d:category=%s:page=%d:size=%d", scope, version, c.Query("category_id"), page, pageSize)
}

func (pc *ProductController) cachedList(c *gin.Context, key string) bool {
	if key == "" {
		return false
	}
	cached, err := pc.listCache.Get(c.Request.Context(), key)
	if err != nil || cached == nil {
		return false
	}
	c.JSON(http.StatusOK, *cached)
	return true
}

func (pc *ProductController) storeList(c *gin.Context, key string, response []ProductResponse) {
	if key == "" {
		return
	}
	if err := pc.listCache.Set(c.Request.Context(), key, &response, listCacheTTL); err != nil {
		logger.Warn(c.Request.Context(), "cache: store list failed", map[string]any{"key": key})
	}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new product with a slug derived from its name
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if request.CategoryID != "" && !domain.ValidateID(string(request.CategoryID)) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid category ID"))
		return
	}
	product, err := pc.productService.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetAll godoc
// @Summary     List products
// @Description Returns products newest first, optionally filtered by category
// @Tags        products
// @Produce     json
// @Param       page        query    int    false "Page (1-based)"
// @Param       page_size   query    int    false "Page size"
// @Param       category_id query    string false "Filter by category"
// @Success     200 {array}  ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	page, pageSize := parsePage(c)

	key := pc.listCacheKey(c, service.ScopeProducts, page, pageSize)
	if pc.cachedList(c, key) {
		return
	}

	var products []*domain.Product
	var err error

	if categoryID := c.Query("category_id"); categoryID != "" {
		if !domain.ValidateID(categoryID) {
			handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid category ID"))
			return
		}
		products, err = pc.productService.ListByCategory(c.Request.Context(), domain.ID(categoryID))
	} else {
		products, err = pc.productService.List(c.Request.Context(), page, pageSize)
	}
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	pc.storeList(c, key, response)
	c.JSON(http.StatusOK, response)
}

// GetLowStock godoc
// @Summary     List low-stock products
// @Description Returns products whose stock fell below their minimum level
// @Tags        products
// @Produce     json
// @Param       page      query    int false "Page (1-based)"
// @Param       page_size query    int false "Page size"
// @Success     200 {array}  ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/low-stock [get]
func (pc *ProductController) GetLowStock(c *gin.Context) {
	page, pageSize := parsePage(c)

	key := pc.listCacheKey(c, service.ScopeProductsLowStock, page, pageSize)
	if pc.cachedList(c, key) {
		return
	}

	products, err := pc.productService.ListLowStock(c.Request.Context(), page, pageSize)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	pc.storeList(c, key, response)
	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary     Get product by ID
// @Description Returns a single product by its ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Partially updates a product; the slug is regenerated when the name changes
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Fields to update"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.UpdateProduct(c.Request.Context(), domain.ID(productID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Removes a product
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     204 "No Content"
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	if err := pc.productService.DeleteProduct(c.Request.Context(), domain.ID(productID)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
