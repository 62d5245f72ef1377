package service

import (
	"context"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/dto"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/logger"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/utils"
)

const (
	ScopeProducts         = "/products"
	ScopeProductsLowStock = "/products/low-stock"

	defaultPageSize = 20
)

type ProductService struct {
	productRepository port.ProductPort
	versions          port.CacheVersionPort
}

func NewProductService(productRepository port.ProductPort, versions port.CacheVersionPort) *ProductService {
	return &ProductService{productRepository: productRepository, versions: versions}
}

func (s *ProductService) bumpScopes(ctx context.Context) {
	for _, scope := range []string{ScopeProducts, ScopeProductsLowStock} {
		if err := s.versions.Bump(ctx, scope); err != nil {
			logger.Error(ctx, "cache: bump scope failed", err, map[string]any{"scope": scope})
		}
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	status := domain.ProductStatus(request.Status)
	if request.Status != "" && !status.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("invalid status, use 'active' | 'inactive' | 'draft'")
	}

	product := domain.NewProduct(
		request.Name,
		utils.Slugify(request.Name),
		request.Description,
		domain.NewAmountFromCents(request.Price),
		request.SKU,
		request.Barcode,
		request.CategoryID,
		request.Images,
		request.StockQuantity,
		request.StockMin,
		status,
	)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":        request.Name,
			"slug":        product.Slug,
			"category_id": request.CategoryID,
		})
		return nil, err
	}

	s.bumpScopes(ctx)
	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.productRepository.GetByID(ctx, id)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.productRepository.GetBySlug(ctx, slug)
}

func normalizePage(page, pageSize int) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return int64(pageSize), int64((page - 1) * pageSize)
}

func (s *ProductService) List(ctx context.Context, page, pageSize int) ([]*domain.Product, error) {
	limit, offset := normalizePage(page, pageSize)
	return s.productRepository.GetAll(ctx, limit, offset)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID domain.ID) ([]*domain.Product, error) {
	return s.productRepository.GetByCategory(ctx, categoryID)
}

func (s *ProductService) ListLowStock(ctx context.Context, page, pageSize int) ([]*domain.Product, error) {
	limit, offset := normalizePage(page, pageSize)
	return s.productRepository.GetLowStock(ctx, limit, offset)
}

func (s *ProductService) CountByCategory(ctx context.Context, categoryID domain.ID) (int64, error) {
	return s.productRepository.CountByCategory(ctx, categoryID)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		product.Name = request.Name
		product.Slug = utils.Slugify(request.Name)
	}
	if request.Description != "" {
		product.Description = request.Description
	}
	if request.Price > 0 {
		product.Price = domain.NewAmountFromCents(request.Price)
	}
	if request.SKU != "" {
		product.SKU = request.SKU
	}
	if request.Barcode != "" {
		product.Barcode = request.Barcode
	}
	if request.CategoryID != "" {
		product.CategoryID = request.CategoryID
	}
	if request.Images != nil {
		product.Images = request.Images
	}
	if request.StockMin != nil {
		product.StockMin = *request.StockMin
	}
	if request.Status != "" {
		status := domain.ProductStatus(request.Status)
		if !status.IsValid() {
			return nil, serviceerrors.NewInvalidRequestError("invalid status, use 'active' | 'inactive' | 'draft'")
		}
		product.Status = status
	}

	if err := s.productRepository.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{"product_id": id})
		return nil, err
	}

	s.bumpScopes(ctx)
	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id domain.ID) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.bumpScopes(ctx)
	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}
