package port

import (
	"context"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CategoryPort interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Category, error)
	GetAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id domain.ID) error
}
