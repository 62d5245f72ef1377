package port

import (
	"context"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetAll(ctx context.Context, limit, offset int64) ([]*domain.Product, error)
	GetByCategory(ctx context.Context, categoryID domain.ID) ([]*domain.Product, error)
	GetLowStock(ctx context.Context, limit, offset int64) ([]*domain.Product, error)
	CountByCategory(ctx context.Context, categoryID domain.ID) (int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
}
