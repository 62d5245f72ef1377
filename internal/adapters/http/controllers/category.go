package controllers

import (
	"fmt"
	"net/http"
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

type CategoryController struct {
	categoryService *service.CategoryService
	versions        port.CacheVersionPort
	listCache       port.CachePort[[]CategoryResponse]
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          string(category.ID),
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func NewCategoryController(
	categoryService *service.CategoryService,
	versions port.CacheVersionPort,
	listCache port.CachePort[[]CategoryResponse],
) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		versions:        versions,
		listCache:       listCache,
	}
}

// CreateCategory godoc
// @Summary     Create a category
// @Description Creates a new category with a slug derived from its name
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateCategoryRequest true "Category data"
// @Success     201     {object} CategoryResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var request dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	category, err := cc.categoryService.CreateCategory(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCategoryResponse(category))
}

// GetAll godoc
// @Summary     List categories
// @Description Returns all categories sorted by name
// @Tags        categories
// @Produce     json
// @Success     200 {array}  CategoryResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/categories [get]
func (cc *CategoryController) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	key := ""
	if version, err := cc.versions.GetVersion(ctx, service.ScopeCategories); err == nil {
		key = fmt.Sprintf("%s:v%d", service.ScopeCategories, version)
	} else {
		logger.Warn(ctx, "cache: version lookup failed", map[string]any{"scope": service.ScopeCategories})
	}

	if key != "" {
		if cached, err := cc.listCache.Get(ctx, key); err == nil && cached != nil {
			c.JSON(http.StatusOK, *cached)
			return
		}
	}

	categories, err := cc.categoryService.GetAll(ctx)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = NewCategoryResponse(category)
	}

	if key != "" {
		if err := cc.listCache.Set(ctx, key, &response, listCacheTTL); err != nil {
			logger.Warn(ctx, "cache: store list failed", map[string]any{"key": key})
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary     Get category by ID
// @Description Returns a single category by its ID
// @Tags        categories
// @Produce     json
// @Param       id  path     string true "Category ID"
// @Success     200 {object} CategoryResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/categories/{id} [get]
func (cc *CategoryController) GetByID(c *gin.Context) {
	categoryID := c.Param("id")
	if !domain.ValidateID(categoryID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid category ID"))
		return
	}
	category, err := cc.categoryService.GetByID(c.Request.Context(), domain.ID(categoryID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary     Update a category
// @Description Partially updates a category; the slug is regenerated when the name changes
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path     string                    true "Category ID"
// @Param       request body     dto.UpdateCategoryRequest true "Fields to update"
// @Success     200     {object} CategoryResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/categories/{id} [put]
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if !domain.ValidateID(categoryID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid category ID"))
		return
	}
	var request dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	category, err := cc.categoryService.UpdateCategory(c.Request.Context(), domain.ID(categoryID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary     Delete a category
// @Description Removes a category; blocked while products still reference it
// @Tags        categories
// @Produce     json
// @Param       id  path     string true "Category ID"
// @Success     204 "No Content"
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/categories/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if !domain.ValidateID(categoryID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid category ID"))
		return
	}
	if err := cc.categoryService.DeleteCategory(c.Request.Context(), domain.ID(categoryID)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
