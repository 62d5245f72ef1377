package service

import (
	"context"
	"fmt"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/dto"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/logger"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/utils"
)

const ScopeCategories = "/categories"

type CategoryService struct {
	categoryRepository port.CategoryPort
	productService     *ProductService
	versions           port.CacheVersionPort
	txManager          port.TransactionManager
}

func NewCategoryService(
	categoryRepository port.CategoryPort,
	productService *ProductService,
	versions port.CacheVersionPort,
	txManager port.TransactionManager,
) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		productService:     productService,
		versions:           versions,
		txManager:          txManager,
	}
}

func (s *CategoryService) bumpScope(ctx context.Context) {
	if err := s.versions.Bump(ctx, ScopeCategories); err != nil {
		logger.Error(ctx, "cache: bump scope failed", err, map[string]any{"scope": ScopeCategories})
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, request *dto.CreateCategoryRequest) (*domain.Category, error) {
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	category := domain.NewCategory(request.Name, utils.Slugify(request.Name), request.Description, isActive)

	if err := s.categoryRepository.Create(ctx, category); err != nil {
		logger.Error(ctx, "category: create failed", err, map[string]any{
			"name": request.Name,
			"slug": category.Slug,
		})
		return nil, err
	}

	s.bumpScope(ctx)
	logger.Info(ctx, "Category created", map[string]any{"category_id": category.ID})
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	return s.categoryRepository.GetByID(ctx, id)
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepository.GetAll(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id domain.ID, request *dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		category.Name = request.Name
		category.Slug = utils.Slugify(request.Name)
	}
	if request.Description != "" {
		category.Description = request.Description
	}
	if request.IsActive != nil {
		category.IsActive = *request.IsActive
	}

	if err := s.categoryRepository.Update(ctx, category); err != nil {
		logger.Error(ctx, "category: update failed", err, map[string]any{"category_id": id})
		return nil, err
	}

	s.bumpScope(ctx)
	logger.Info(ctx, "Category updated", map[string]any{"category_id": id})
	return category, nil
}

// DeleteCategory refuses to remove a category while products still reference
// it. The count and the delete run in one transaction so a product created in
// between cannot be orphaned.
func (s *CategoryService) DeleteCategory(ctx context.Context, id domain.ID) error {
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		count, err := s.productService.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return serviceerrors.NewConflictError(fmt.Sprintf("cannot delete category %s: %d product(s) linked to it", id, count))
		}

		return s.categoryRepository.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.bumpScope(ctx)
	logger.Info(ctx, "Category deleted", map[string]any{"category_id": id})
	return nil
}
